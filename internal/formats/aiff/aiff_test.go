// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// mockAiffReader simulates aiff.Decoder for testing
type mockAiffReader struct {
	format  *goaudio.Format
	data    []int
	offset  int
	readErr error
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.offset >= len(m.data) {
		return 0, nil
	}

	n := copy(buf.Data, m.data[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecodeFrom_Samples(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		data:   []int{0, 16384, -16384, 32767, -32768},
	}

	stream, err := decodeFrom(mock, 16)
	if err != nil {
		t.Fatalf("decodeFrom() error = %v", err)
	}

	if stream.SampleRate != 44100 || stream.Channels != 2 {
		t.Errorf("got %d Hz x %d, want 44100 Hz x 2", stream.SampleRate, stream.Channels)
	}
	// trailing half frame is dropped
	if len(stream.Samples) != 4 {
		t.Fatalf("len(Samples) = %d, want 4", len(stream.Samples))
	}
	if stream.Samples[1] != 0.5 || stream.Samples[2] != -0.5 {
		t.Errorf("Samples = %v, want [0 0.5 -0.5 ...]", stream.Samples)
	}
	if stream.Subtype != native.FormatPCM16 {
		t.Errorf("Subtype = 0x%x, want PCM_16", stream.Subtype)
	}
}

func TestDecodeFrom_SignedEightBit(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		data:   []int{0xC0, 0x40},
	}

	stream, err := decodeFrom(mock, 8)
	if err != nil {
		t.Fatalf("decodeFrom() error = %v", err)
	}

	if stream.Samples[0] != -0.5 || stream.Samples[1] != 0.5 {
		t.Errorf("Samples = %v, want [-0.5 0.5]", stream.Samples)
	}
}

func TestDecodeFrom_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mock     *mockAiffReader
		bitDepth int
		want     error
	}{
		{
			name:     "unsupported bit depth",
			mock:     &mockAiffReader{format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}},
			bitDepth: 12,
			want:     pcm.ErrUnsupportedEncoding,
		},
		{
			name:     "missing format",
			mock:     &mockAiffReader{},
			bitDepth: 16,
			want:     pcm.ErrMalformed,
		},
		{
			name: "read failure",
			mock: &mockAiffReader{
				format:  &goaudio.Format{NumChannels: 1, SampleRate: 8000},
				readErr: io.ErrUnexpectedEOF,
			},
			bitDepth: 16,
			want:     pcm.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeFrom(tt.mock, tt.bitDepth)
			if !errors.Is(err, tt.want) {
				t.Errorf("decodeFrom() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data at all")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	want := []int16{0, 1000, -1000, 32767, -32768, 7}
	samples := make([]float64, len(want))
	for i, v := range want {
		samples[i] = pcm.FromInt16(v)
	}

	path := filepath.Join(t.TempDir(), "round.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	in := &pcm.Stream{SampleRate: 11025, Channels: 1, Subtype: native.FormatPCM16, Samples: samples}
	if err := (Encoder{}).Encode(f, in); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	f.Close()

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	out, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if out.SampleRate != 11025 || out.Channels != 1 {
		t.Errorf("got %d Hz x %d, want 11025 Hz x 1", out.SampleRate, out.Channels)
	}
	if len(out.Samples) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(out.Samples), len(want))
	}
	for i, v := range want {
		if got := pcm.ToInt16(out.Samples[i]); got != v {
			t.Errorf("sample[%d] = %d, want %d", i, got, v)
		}
	}
}
