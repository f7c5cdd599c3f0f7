// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for the portable backend.
//
// This package uses github.com/jfreymuth/oggvorbis for the audio and
// github.com/dhowden/tag for Vorbis comments.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Any channel count and sample rate
//
// Writing is not supported.
//
// # Decoding
//
//	f, _ := os.Open("audio.ogg")
//	defer f.Close()
//
//	stream, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, pcm.ErrMalformed) for damaged files
//	}
//
// # Output Format
//
// The decoded stream:
//   - Samples: float64, not quantised since Vorbis is lossy
//   - Channels: as stored in the identification header
//   - Subtype: VORBIS
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// # Strings
//
// TITLE, ARTIST, ALBUM, GENRE, DATE, TRACKNUMBER and COMMENT become native
// strings. They are read-only.
package vorbis
