// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF files for the portable backend.
//
// It uses github.com/go-audio/aiff for both directions.
//
// # Supported Formats
//
// Reading:
//   - PCM signed 8, 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// Writing:
//   - PCM signed 16, 24 and 32-bit, big-endian
//
// Other sample sizes are rejected with ErrUnsupportedBitDepth, which wraps
// pcm.ErrUnsupportedEncoding.
//
// # Decoding and Encoding
//
//	in, _ := os.Open("input.aiff")
//	stream, err := aiff.Decoder{}.Decode(in)
//	if err != nil {
//	    // Handle error
//	}
//
//	out, _ := os.Create("copy.aiff")
//	stream.Subtype = native.FormatPCM24
//	err = aiff.Encoder{}.Encode(out, stream)
//
// Samples are quantised to the target depth on write, so integer data
// written and read back at the same depth is unchanged.
//
// # Limitations
//
// AIFF string chunks (NAME, AUTH, ANNO) are neither read nor written.
package aiff
