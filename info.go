// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/sndfile/internal/native"

// Info describes an open file. For write opens it is what the caller asked
// for, completed by the library.
type Info struct {
	Frames     int64
	SampleRate int32
	Channels   int32
	Format     Format
	Sections   int32
	Seekable   bool
}

func (i Info) native() native.Info {
	ni := native.Info{
		Frames:     i.Frames,
		SampleRate: i.SampleRate,
		Channels:   i.Channels,
		Format:     i.Format.Raw(),
		Sections:   i.Sections,
	}
	if i.Seekable {
		ni.Seekable = native.True
	}

	return ni
}

func infoFromNative(ni native.Info) Info {
	return Info{
		Frames:     ni.Frames,
		SampleRate: ni.SampleRate,
		Channels:   ni.Channels,
		Format:     ParseFormat(ni.Format),
		Sections:   ni.Sections,
		Seekable:   ni.Seekable != native.False,
	}
}
