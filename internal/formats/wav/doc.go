// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF WAVE files for the portable backend.
//
// It uses github.com/go-audio/wav for the sample data and walks the RIFF
// chunks itself for LIST/INFO strings.
//
// # Supported Formats
//
// Reading and writing:
//   - PCM unsigned 8-bit
//   - PCM signed 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// WAVE_FORMAT_EXTENSIBLE files are read when their samples are integer PCM.
// Float and compressed encodings are rejected with an error wrapping
// pcm.ErrUnsupportedEncoding.
//
// # Decoding and Encoding
//
//	in, _ := os.Open("input.wav")
//	stream, err := wav.Decoder{}.Decode(in)
//	if err != nil {
//	    // errors.Is(err, pcm.ErrMalformed) for damaged files
//	}
//
//	out, _ := os.Create("copy.wav")
//	stream.Tags[native.StrTitle] = "Copy"
//	err = wav.Encoder{}.Encode(out, stream)
//
// # Strings
//
// The INFO chunk ids map to native string kinds:
//
//	INAM title      ICOP copyright   ISFT software
//	IART artist     ICMT comment     ICRD date
//	IPRD album      ITRK track       IGNR genre
//
// There is no INFO id for a license, so SupportedTags leaves it out.
//
// # File Format
//
// A WAV file is a RIFF header, a fmt chunk describing the samples, a data
// chunk with the interleaved little-endian samples and optional chunks such
// as LIST. Encoder writes the LIST chunk after the data.
//
// RIFF pads odd-sized chunks to an even length, but not every writer does,
// go-audio's INFO entries included. The reader accepts both layouts.
package wav
