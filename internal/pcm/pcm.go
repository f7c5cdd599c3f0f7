// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the decoded representation shared by the portable codecs
// and the sample conversions between it and the four client sample types.
//
// Samples are kept interleaved as float64 normalised to [-1, 1). A sample
// stored at an integer bit depth is always an exact multiple of 2^-(depth-1),
// which keeps integer round trips lossless.
package pcm

// Stream is a fully decoded sound file.
type Stream struct {
	SampleRate int
	Channels   int
	// BitDepth is the integer precision of the stored samples; 0 means the
	// encoding is lossy or floating point and samples are not quantised.
	BitDepth int
	// Subtype is the native subtype constant describing the encoding.
	Subtype int32
	Samples []float64
	// Tags is keyed by native string kind.
	Tags map[int]string
}

// Frames returns the number of whole frames in s.
func (s *Stream) Frames() int64 {
	if s.Channels <= 0 {
		return 0
	}

	return int64(len(s.Samples) / s.Channels)
}
