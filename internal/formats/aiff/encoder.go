// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// Subtypes lists the encodings Encoder can write.
func Subtypes() []int32 {
	return []int32{native.FormatPCM16, native.FormatPCM24, native.FormatPCM32}
}

// Encoder writes big-endian integer PCM AIFF files. AIFF strings are not
// written.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, s *pcm.Stream) error {
	var bitDepth int
	switch s.Subtype {
	case native.FormatPCM16:
		bitDepth = 16
	case native.FormatPCM24:
		bitDepth = 24
	case native.FormatPCM32:
		bitDepth = 32
	default:
		return fmt.Errorf("%w: 0x%04x", ErrUnsupportedSubtype, s.Subtype)
	}
	if s.Channels <= 0 {
		return ErrUnsupportedAiffLayout
	}

	data := make([]int, len(s.Samples))
	for i, x := range s.Samples {
		data[i] = pcm.ToInt(x, bitDepth)
	}

	enc := aiff.NewEncoder(w, s.SampleRate, bitDepth, s.Channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: s.Channels, SampleRate: s.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing AIFF samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising AIFF: %w", err)
	}

	return nil
}
