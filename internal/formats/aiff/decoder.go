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

// readChunkSize is how many samples are pulled from the decoder per call.
const readChunkSize = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (*pcm.Stream, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decodeFrom(dec, int(dec.BitDepth))
}

func decodeFrom(dec aiffReader, bitDepth int) (*pcm.Stream, error) {
	subtype, ok := subtypeForDepth(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, readChunkSize),
		Format: format,
	}

	var samples []float64
	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			// AIFF is signed at every depth
			samples = append(samples, pcm.FromInt(pcm.SignExtend(v, bitDepth), bitDepth))
		}

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading AIFF samples: %w: %w", pcm.ErrMalformed, err)
		}
	}

	samples = samples[:len(samples)-len(samples)%format.NumChannels]

	return &pcm.Stream{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
		Subtype:    subtype,
		Samples:    samples,
		Tags:       map[int]string{},
	}, nil
}

func subtypeForDepth(bitDepth int) (int32, bool) {
	switch bitDepth {
	case 8:
		return native.FormatPCMS8, true
	case 16:
		return native.FormatPCM16, true
	case 24:
		return native.FormatPCM24, true
	case 32:
		return native.FormatPCM32, true
	}

	return 0, false
}
