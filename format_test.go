// SPDX-License-Identifier: EPL-2.0

package sndfile

import "testing"

func TestParseFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  int32
		want Format
	}{
		{name: "wav pcm16", raw: 0x010002, want: Format{Major: FormatWAV, Subtype: SubtypePCM16}},
		{name: "aiff big", raw: 0x20020003, want: Format{Major: FormatAIFF, Subtype: SubtypePCM24, Endian: EndianBig}},
		{name: "ogg vorbis", raw: 0x200060, want: Format{Major: FormatOGG, Subtype: SubtypeVorbis}},
		{name: "cpu endian", raw: 0x30170002, want: Format{Major: FormatFLAC, Subtype: SubtypePCM16, Endian: EndianCPU}},
		{name: "zero", raw: 0, want: Format{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseFormat(tt.raw)
			if got != tt.want {
				t.Errorf("ParseFormat(0x%08x) = %+v, want %+v", tt.raw, got, tt.want)
			}
			if got.Raw() != tt.raw {
				t.Errorf("Raw() = 0x%08x, want 0x%08x", got.Raw(), tt.raw)
			}
		})
	}
}

func TestParseFormat_KeepsUnknownBits(t *testing.T) {
	t.Parallel()

	for _, raw := range []int32{0x40010002, -0x7FFEFFFE, 0x7FFFFFFF, -1} {
		if got := ParseFormat(raw).Raw(); got != raw {
			t.Errorf("ParseFormat(0x%08x).Raw() = 0x%08x", uint32(raw), uint32(got))
		}
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{format: Format{Major: FormatWAV, Subtype: SubtypePCM16}, want: "WAV|PCM_16"},
		{format: Format{Major: FormatAIFF, Subtype: SubtypeFloat, Endian: EndianLittle}, want: "AIFF|FLOAT|LITTLE"},
		{format: Format{Major: FormatMPEG, Subtype: SubtypeMPEGLayerIII}, want: "MPEG|MPEG_LAYER_III"},
		{format: ParseFormat(0x40010002), want: "WAV|PCM_16|0x40000000"},
		{format: Format{Major: MajorFormat(0x7F0000), Subtype: Subtype(0x0999)}, want: "MajorFormat(0x7f0000)|Subtype(0x0999)"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestInfo_NativeRoundTrip(t *testing.T) {
	t.Parallel()

	in := Info{
		Frames:     12345,
		SampleRate: 96000,
		Channels:   6,
		Format:     Format{Major: FormatCAF, Subtype: SubtypeALAC24, Endian: EndianBig},
		Sections:   2,
		Seekable:   true,
	}
	if got := infoFromNative(in.native()); got != in {
		t.Errorf("infoFromNative(native()) = %+v, want %+v", got, in)
	}
}
