// SPDX-License-Identifier: EPL-2.0

// Package sndfile reads and writes sampled audio files through a native
// sound file library.
//
// The package is a thin, safe handle over the library: it opens files,
// moves samples in and out of caller buffers, seeks, and reads or writes the
// string metadata. All codec work happens in the library. Builds with the
// libsndfile tag and cgo link the C libsndfile; other builds use a portable
// Go backend that reads WAV, AIFF, Ogg Vorbis and MP3 files and writes
// integer PCM WAV and AIFF.
//
// # Opening files
//
// Reading takes the parameters from the file:
//
//	f, err := sndfile.Open("in.wav", sndfile.ModeRead)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	info := f.Info()
//
// Writing needs them up front:
//
//	f, err := sndfile.Open("out.wav", sndfile.ModeWrite, sndfile.WithInfo(sndfile.Info{
//		SampleRate: 44100,
//		Channels:   2,
//		Format:     sndfile.Format{Major: sndfile.FormatWAV, Subtype: sndfile.SubtypePCM16},
//	}))
//
// FormatCheck tells in advance whether such an open would be accepted.
//
// # Moving samples
//
// Samples are interleaved. Every transfer comes in four sample types and in
// two counting styles: items (ReadInt16, WriteFloat64, ...) count single
// samples and must be a multiple of the channel count, frames
// (ReadFramesInt16, WriteFramesFloat64, ...) count one sample per channel.
// The returned count is what was moved. A short count at the end of a file
// is normal, not an error.
//
// # Errors
//
// Failures reported by the library are *Error values carrying an ErrorKind
// and the raw code; compare them with errors.Is against ErrMalformedFile and
// the other sentinels. SeekFrames and the transfer methods report library
// failures the way the library does, through their return value and
// LastError, and return a Go error only for misuse such as a closed file.
//
// # Lifetime
//
// Close releases the handle and flushes pending writes. A File that is
// dropped without Close is released when it is garbage collected, with a
// warning in the log.
package sndfile
