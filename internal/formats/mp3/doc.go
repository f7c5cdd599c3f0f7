// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 layer III files for the portable backend.
//
// It uses github.com/hajimehoshi/go-mp3 for the audio frames and
// github.com/dhowden/tag for ID3 strings.
//
// # Supported Formats
//
// The decoder supports:
//   - MPEG-1 and MPEG-2 layer III
//   - Constant and variable bitrates
//   - Files with or without a leading ID3v2 tag
//
// Writing is not supported; the backend refuses WRITE and RDWR opens of
// MPEG files.
//
// # Decoding
//
// Decode reads the whole file into a pcm.Stream:
//
//	f, _ := os.Open("audio.mp3")
//	defer f.Close()
//
//	stream, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, pcm.ErrMalformed) for damaged files
//	}
//
//	fmt.Println(stream.SampleRate, stream.Channels, stream.Frames())
//
// # Output Format
//
// The decoded stream:
//   - Samples: float64 in range [-1.0, 1.0], converted from 16-bit
//   - Channels: always 2, go-mp3 duplicates mono files
//   - Sample rate: as stored in the frame headers
//   - Subtype: MPEG_LAYER_III
//
// A trailing half frame is dropped so Samples always holds whole frames.
//
// # Strings
//
// ID3 title, artist, album, genre, year, track and comment map to the
// matching native string kinds. They are read-only.
package mp3
