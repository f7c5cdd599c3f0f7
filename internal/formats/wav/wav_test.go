// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// createWAVFile builds a canonical 16-bit WAV file, optionally followed by a
// LIST/INFO chunk.
func createWAVFile(sampleRate, channels int, samples []int16, info map[string]string) []byte {
	data := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(data, binary.LittleEndian, s)
	}

	list := new(bytes.Buffer)
	if len(info) > 0 {
		list.WriteString("INFO")
		for id, value := range info {
			v := append([]byte(value), 0)
			list.WriteString(id)
			binary.Write(list, binary.LittleEndian, uint32(len(v)))
			list.Write(v)
			if len(v)%2 == 1 {
				list.WriteByte(0)
			}
		}
	}

	buf := new(bytes.Buffer)
	riffSize := 4 + 24 + 8 + data.Len()
	if list.Len() > 0 {
		riffSize += 8 + list.Len()
	}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(riffSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	if list.Len() > 0 {
		buf.WriteString("LIST")
		binary.Write(buf, binary.LittleEndian, uint32(list.Len()))
		buf.Write(list.Bytes())
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768, 12345}
	stream, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 2, samples, nil)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if stream.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", stream.SampleRate)
	}
	if stream.Channels != 2 {
		t.Errorf("Channels = %d, want 2", stream.Channels)
	}
	if stream.Subtype != native.FormatPCM16 {
		t.Errorf("Subtype = 0x%x, want PCM_16", stream.Subtype)
	}
	if stream.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", stream.Frames())
	}

	for i, want := range samples {
		if got := pcm.ToInt16(stream.Samples[i]); got != want {
			t.Errorf("sample[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestDecoder_InfoChunk(t *testing.T) {
	t.Parallel()

	info := map[string]string{
		"INAM": "Title",
		"IART": "Artist",
		"ICMT": "odd",
		"IXYZ": "ignored",
	}
	stream, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(16000, 1, []int16{1, 2, 3}, info)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := map[int]string{
		native.StrTitle:   "Title",
		native.StrArtist:  "Artist",
		native.StrComment: "odd",
	}
	if len(stream.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", stream.Tags, want)
	}
	for kind, value := range want {
		if stream.Tags[kind] != value {
			t.Errorf("Tags[%d] = %q, want %q", kind, stream.Tags[kind], value)
		}
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, REALLY NOT")))
	if err == nil {
		t.Fatal("Decode() error = nil, want error")
	}
	if !errors.Is(err, pcm.ErrMalformed) {
		t.Errorf("Decode() error = %v, want pcm.ErrMalformed", err)
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	want := []int16{0, 100, -100, 32767, -32768, 12345, -6789, 42}
	samples := make([]float64, len(want))
	for i, v := range want {
		samples[i] = pcm.FromInt16(v)
	}

	path := filepath.Join(t.TempDir(), "round.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	in := &pcm.Stream{
		SampleRate: 22050,
		Channels:   2,
		Subtype:    native.FormatPCM16,
		Samples:    samples,
		Tags: map[int]string{
			native.StrTitle:  "round trip",
			native.StrArtist: "sndfile",
		},
	}
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

	if out.SampleRate != 22050 || out.Channels != 2 {
		t.Errorf("got %d Hz x %d, want 22050 Hz x 2", out.SampleRate, out.Channels)
	}
	if len(out.Samples) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(out.Samples), len(want))
	}
	for i, v := range want {
		if got := pcm.ToInt16(out.Samples[i]); got != v {
			t.Errorf("sample[%d] = %d, want %d", i, got, v)
		}
	}
	if out.Tags[native.StrTitle] != "round trip" {
		t.Errorf("title = %q, want %q", out.Tags[native.StrTitle], "round trip")
	}
	if out.Tags[native.StrArtist] != "sndfile" {
		t.Errorf("artist = %q, want %q", out.Tags[native.StrArtist], "sndfile")
	}
}

func TestEncoder_UnsupportedSubtype(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	err = Encoder{}.Encode(f, &pcm.Stream{SampleRate: 8000, Channels: 1, Subtype: native.FormatVorbis})
	if !errors.Is(err, pcm.ErrUnsupportedEncoding) {
		t.Errorf("Encode() error = %v, want pcm.ErrUnsupportedEncoding", err)
	}
}

func TestEncoder_OddLengthTags(t *testing.T) {
	t.Parallel()

	// the encoder counts the terminating NUL, so even-length strings give
	// odd-sized entries
	tags := map[int]string{
		native.StrTitle:       "Night Train",
		native.StrCopyright:   "cc",
		native.StrSoftware:    "sndfile",
		native.StrArtist:      "v-artist",
		native.StrComment:     "a comment",
		native.StrDate:        "2024",
		native.StrAlbum:       "Side B",
		native.StrTrackNumber: "7",
		native.StrGenre:       "jazz",
	}

	path := filepath.Join(t.TempDir(), "tags.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	in := &pcm.Stream{
		SampleRate: 8000,
		Channels:   1,
		Subtype:    native.FormatPCM16,
		Samples:    []float64{0, 0.25},
		Tags:       tags,
	}
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

	for kind, want := range tags {
		if got := out.Tags[kind]; got != want {
			t.Errorf("Tags[%d] = %q, want %q", kind, got, want)
		}
	}
	if len(out.Samples) != 2 {
		t.Errorf("len(Samples) = %d, want 2", len(out.Samples))
	}
}

func TestParseInfo_PaddedAndUnpadded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "padded", body: "INAM\x03\x00\x00\x00ab\x00\x00IART\x02\x00\x00\x00c\x00"},
		{name: "unpadded", body: "INAM\x03\x00\x00\x00ab\x00IART\x02\x00\x00\x00c\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tags := make(map[int]string)
			parseInfo([]byte(tt.body), tags)

			if tags[native.StrTitle] != "ab" || tags[native.StrArtist] != "c" {
				t.Errorf("parseInfo() = %v, want title ab and artist c", tags)
			}
		})
	}
}

func TestReadInfoTags_UnpaddedChunk(t *testing.T) {
	t.Parallel()

	// odd-sized chunk before LIST with no pad byte
	buf := new(bytes.Buffer)
	buf.WriteString("RIFF\x00\x00\x00\x00WAVE")
	buf.WriteString("junk\x03\x00\x00\x00xyz")
	buf.WriteString("LIST\x10\x00\x00\x00INFOINAM\x03\x00\x00\x00ab\x00\x00")

	tags, err := readInfoTags(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readInfoTags() error = %v", err)
	}
	if tags[native.StrTitle] != "ab" {
		t.Errorf("readInfoTags() = %v, want title ab", tags)
	}
}

func TestParseInfo_Truncated(t *testing.T) {
	t.Parallel()

	body := []byte("INAM\x10\x00\x00\x00short")
	tags := make(map[int]string)
	parseInfo(body, tags)

	if len(tags) != 0 {
		t.Errorf("parseInfo() on truncated body = %v, want empty", tags)
	}
}
