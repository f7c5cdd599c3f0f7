// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/sndfile/internal/formats/tags"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// ErrNotMP3File indicates the stream has no decodable MPEG audio frames
var ErrNotMP3File = fmt.Errorf("not an MPEG layer III file: %w", pcm.ErrMalformed)

// go-mp3 always produces 16-bit little-endian stereo
const channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads MPEG layer III streams, including ID3 strings.
type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (*pcm.Stream, error) {
	id3, err := tags.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading ID3 tags: %w", err)
	}

	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	stream, err := decodeFrom(dec)
	if err != nil {
		return nil, err
	}
	stream.Tags = id3

	return stream, nil
}

func decodeFrom(dec mp3Reader) (*pcm.Stream, error) {
	buf := make([]byte, 8192)
	var (
		samples []float64
		pending []byte
	)

	for {
		n, err := dec.Read(buf)
		pending = append(pending, buf[:n]...)

		// Each sample is 2 bytes (int16 little-endian)
		whole := len(pending) &^ 1
		for i := 0; i < whole; i += 2 {
			val := int16(uint16(pending[i]) | uint16(pending[i+1])<<8)
			samples = append(samples, pcm.FromInt16(val))
		}
		pending = pending[whole:]

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding MP3: %w: %w", pcm.ErrMalformed, err)
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]

	return &pcm.Stream{
		SampleRate: dec.SampleRate(),
		Channels:   channels,
		Subtype:    native.FormatMPEGLayerIII,
		Samples:    samples,
		Tags:       map[int]string{},
	}, nil
}
