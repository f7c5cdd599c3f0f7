// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// mockMP3Reader simulates gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	chunk      int
	err        error
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}

	end := min(len(m.data), m.offset+m.chunk, m.offset+len(p))
	n := copy(p, m.data[m.offset:end])
	m.offset += n

	return n, nil
}

func TestDecodeFrom_OddReadBoundaries(t *testing.T) {
	t.Parallel()

	// two stereo frames: (100, -100), (32767, -32768)
	data := []byte{100, 0, 0x9C, 0xFF, 0xFF, 0x7F, 0x00, 0x80}
	mock := &mockMP3Reader{sampleRate: 44100, data: data, chunk: 3}

	stream, err := decodeFrom(mock)
	if err != nil {
		t.Fatalf("decodeFrom() error = %v", err)
	}

	want := []int16{100, -100, 32767, -32768}
	if len(stream.Samples) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(stream.Samples), len(want))
	}
	for i, v := range want {
		if got := pcm.ToInt16(stream.Samples[i]); got != v {
			t.Errorf("sample[%d] = %d, want %d", i, got, v)
		}
	}
	if stream.Channels != 2 || stream.SampleRate != 44100 {
		t.Errorf("got %d Hz x %d, want 44100 Hz x 2", stream.SampleRate, stream.Channels)
	}
	if stream.Subtype != native.FormatMPEGLayerIII {
		t.Errorf("Subtype = 0x%x, want MPEG_LAYER_III", stream.Subtype)
	}
}

func TestDecodeFrom_ReadError(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 44100, err: io.ErrUnexpectedEOF}
	if _, err := decodeFrom(mock); !errors.Is(err, pcm.ErrMalformed) {
		t.Errorf("decodeFrom() error = %v, want pcm.ErrMalformed", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}
