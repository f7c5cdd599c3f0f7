// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

const (
	formatTagPCM        = 1
	formatTagExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV files, including their LIST/INFO strings.
type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (*pcm.Stream, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatTagPCM && dec.WavAudioFormat != formatTagExtensible {
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnsupportedFormatTag, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	subtype, ok := subtypeForDepth(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := int(dec.NumChans)
	if channels == 0 {
		return nil, ErrNoChannels
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV samples: %w: %w", pcm.ErrMalformed, err)
	}

	samples := make([]float64, len(buf.Data)-len(buf.Data)%channels)
	for i := range samples {
		v := buf.Data[i]
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			v -= 128
		} else {
			v = pcm.SignExtend(v, bitDepth)
		}
		samples[i] = pcm.FromInt(v, bitDepth)
	}

	tags, err := readInfoTags(r)
	if err != nil {
		return nil, fmt.Errorf("reading WAV strings: %w: %w", pcm.ErrMalformed, err)
	}

	return &pcm.Stream{
		SampleRate: int(dec.SampleRate),
		Channels:   channels,
		BitDepth:   bitDepth,
		Subtype:    subtype,
		Samples:    samples,
		Tags:       tags,
	}, nil
}

func subtypeForDepth(bitDepth int) (int32, bool) {
	switch bitDepth {
	case 8:
		return native.FormatPCMU8, true
	case 16:
		return native.FormatPCM16, true
	case 24:
		return native.FormatPCM24, true
	case 32:
		return native.FormatPCM32, true
	}

	return 0, false
}
