// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// Subtypes lists the encodings Encoder can write.
func Subtypes() []int32 {
	return []int32{native.FormatPCMU8, native.FormatPCM16, native.FormatPCM24, native.FormatPCM32}
}

// Encoder writes s as an integer PCM WAV file with an optional LIST/INFO chunk.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, s *pcm.Stream) error {
	bitDepth, ok := depthForSubtype(s.Subtype)
	if !ok {
		return fmt.Errorf("%w: 0x%04x", ErrUnsupportedSubtype, s.Subtype)
	}
	if s.Channels <= 0 {
		return ErrNoChannels
	}

	data := make([]int, len(s.Samples))
	for i, x := range s.Samples {
		v := pcm.ToInt(x, bitDepth)
		if bitDepth == 8 {
			v += 128
		}
		data[i] = v
	}

	enc := wav.NewEncoder(w, s.SampleRate, bitDepth, s.Channels, formatTagPCM)
	enc.Metadata = metadataFromTags(s.Tags)

	// Write even when empty so the header exists before Close patches sizes.
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: s.Channels, SampleRate: s.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising WAV: %w", err)
	}

	return nil
}

func depthForSubtype(subtype int32) (int, bool) {
	switch subtype {
	case native.FormatPCMU8:
		return 8, true
	case native.FormatPCM16:
		return 16, true
	case native.FormatPCM24:
		return 24, true
	case native.FormatPCM32:
		return 32, true
	}

	return 0, false
}
