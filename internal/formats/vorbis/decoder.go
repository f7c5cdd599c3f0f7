// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndfile/internal/formats/tags"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
	"github.com/jfreymuth/oggvorbis"
)

// ErrNotVorbisFile indicates the stream is not Ogg Vorbis
var ErrNotVorbisFile = fmt.Errorf("not an Ogg Vorbis file: %w", pcm.ErrMalformed)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder reads Ogg Vorbis streams. Vorbis is lossy, so the decoded stream
// is not quantised.
type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (*pcm.Stream, error) {
	comments, err := tags.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading Vorbis comments: %w", err)
	}

	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	stream, err := decodeFrom(dec)
	if err != nil {
		return nil, err
	}
	stream.Tags = comments

	return stream, nil
}

func decodeFrom(dec oggReader) (*pcm.Stream, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, ErrNotVorbisFile
	}

	frameBuf := make([]float32, 4096*channels)
	var samples []float64
	for {
		// n counts interleaved values, not frames
		n, err := dec.Read(frameBuf)
		for _, v := range frameBuf[:n] {
			samples = append(samples, float64(v))
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding Vorbis: %w: %w", pcm.ErrMalformed, err)
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]

	return &pcm.Stream{
		SampleRate: dec.SampleRate(),
		Channels:   channels,
		Subtype:    native.FormatVorbis,
		Samples:    samples,
		Tags:       map[int]string{},
	}, nil
}
