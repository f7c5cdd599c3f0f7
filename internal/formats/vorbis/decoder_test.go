// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func TestDecodeFrom_Stereo(t *testing.T) {
	t.Parallel()

	mock := &mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}

	stream, err := decodeFrom(mock)
	if err != nil {
		t.Fatalf("decodeFrom() error = %v", err)
	}

	if stream.SampleRate != 48000 || stream.Channels != 2 {
		t.Errorf("got %d Hz x %d, want 48000 Hz x 2", stream.SampleRate, stream.Channels)
	}
	if stream.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", stream.Frames())
	}
	if stream.Subtype != native.FormatVorbis {
		t.Errorf("Subtype = 0x%x, want VORBIS", stream.Subtype)
	}
	if stream.BitDepth != 0 {
		t.Errorf("BitDepth = %d, want 0 for a lossy stream", stream.BitDepth)
	}
	if stream.Samples[2] != float64(float32(0.2)) {
		t.Errorf("Samples[2] = %v, want %v", stream.Samples[2], float64(float32(0.2)))
	}
}

func TestDecodeFrom_LargeStream(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 20000)
	for i := range samples {
		samples[i] = float32(i%100) / 100
	}
	mock := &mockOggVorbisReader{sampleRate: 44100, channels: 1, samples: samples}

	stream, err := decodeFrom(mock)
	if err != nil {
		t.Fatalf("decodeFrom() error = %v", err)
	}
	if len(stream.Samples) != len(samples) {
		t.Errorf("len(Samples) = %d, want %d", len(stream.Samples), len(samples))
	}
}

func TestDecodeFrom_ReadError(t *testing.T) {
	t.Parallel()

	mock := &mockOggVorbisReader{sampleRate: 44100, channels: 1, returnErrors: true}

	_, err := decodeFrom(mock)
	if !errors.Is(err, pcm.ErrMalformed) {
		t.Errorf("decodeFrom() error = %v, want pcm.ErrMalformed", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if !errors.Is(err, ErrNotVorbisFile) {
		t.Errorf("Decode() error = %v, want ErrNotVorbisFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}
