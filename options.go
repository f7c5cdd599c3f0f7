// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/sndfile/internal/native"

// Option configures Open and OpenFd.
type Option func(*openOptions)

type openOptions struct {
	info Info
	lib  native.Library
}

func defaultOptions() *openOptions {
	return &openOptions{lib: defaultLibrary}
}

func buildOptions(opts []Option) *openOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithInfo supplies the sample rate, channel count and format for write
// opens. Read opens ignore it and take the parameters from the file.
//
// Example:
//
//	f, err := sndfile.Open("out.wav", sndfile.ModeWrite, sndfile.WithInfo(sndfile.Info{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    Format:     sndfile.Format{Major: sndfile.FormatWAV, Subtype: sndfile.SubtypePCM16},
//	}))
func WithInfo(info Info) Option {
	return func(o *openOptions) {
		o.info = info
	}
}

// withLibrary swaps the backend, for tests.
func withLibrary(lib native.Library) Option {
	return func(o *openOptions) {
		o.lib = lib
	}
}
