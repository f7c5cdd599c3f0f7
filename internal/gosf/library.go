// SPDX-License-Identifier: EPL-2.0

// Package gosf is a portable, pure Go implementation of the native sound file
// API. It decodes a whole file into memory on open and encodes it back on
// WriteSync and Close, so it suits the short clips the wrapper is tested with
// rather than long recordings.
package gosf

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// Version identifies the backend in the same shape libsndfile does.
const Version = "gosf-1.0.0"

const (
	maxChannels = 1024
	headerProbe = 12
)

var _ native.Library = (*Library)(nil)

// Library is the process-wide state: the container registry and the error
// left by the last failed open.
type Library struct {
	reg *registry

	mu      sync.Mutex
	lastErr int
}

// New returns a Library with every built-in container registered.
func New() *Library {
	return &Library{reg: defaultRegistry()}
}

func (l *Library) setErr(code int) {
	l.mu.Lock()
	l.lastErr = code
	l.mu.Unlock()
}

func (l *Library) Open(path string, mode int, info *native.Info) native.Handle {
	if info == nil {
		l.setErr(codeBadInfo)
		return nil
	}

	var flag int
	switch mode {
	case native.ModeRead:
		flag = os.O_RDONLY
	case native.ModeWrite:
		if !l.FormatCheck(info) {
			l.setErr(codeUnrecognisedFormat)
			return nil
		}
		flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case native.ModeReadWrite:
		flag = os.O_RDWR | os.O_CREATE
	default:
		l.setErr(codeBadOpenMode)
		return nil
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		l.setErr(codeSystem)
		return nil
	}

	return l.openFile(f, path, mode, info)
}

func (l *Library) OpenFd(fd int, mode int, info *native.Info, closeFd bool) native.Handle {
	if info == nil {
		l.setErr(codeBadInfo)
		return nil
	}
	if mode != native.ModeRead && mode != native.ModeWrite && mode != native.ModeReadWrite {
		l.setErr(codeBadOpenMode)
		return nil
	}
	if mode == native.ModeWrite && !l.FormatCheck(info) {
		l.setErr(codeUnrecognisedFormat)
		return nil
	}

	f, err := fdFile(fd, closeFd)
	if err != nil {
		l.setErr(codeSystem)
		return nil
	}

	if mode == native.ModeWrite {
		if err := f.Truncate(0); err != nil {
			f.Close()
			l.setErr(codeSystem)
			return nil
		}
	}

	return l.openFile(f, f.Name(), mode, info)
}

// openFile takes ownership of f. It is closed on failure.
func (l *Library) openFile(f *os.File, name string, mode int, info *native.Info) native.Handle {
	st, err := f.Stat()
	if err != nil {
		f.Close()
		l.setErr(codeSystem)
		return nil
	}

	h := &handle{file: f, mode: mode}
	h.logf("File : %s\n", name)

	var code int
	if mode == native.ModeRead || (mode == native.ModeReadWrite && st.Size() > 0) {
		code = l.load(h, info)
	} else {
		code = l.create(h, info)
	}

	if code != codeNoError {
		f.Close()
		l.setErr(code)
		return nil
	}

	h.logf("Format : %s\nChannels : %d\nSample Rate : %d\nFrames : %d\n",
		h.entry.name, h.stream.Channels, h.stream.SampleRate, h.stream.Frames())

	return h
}

// load decodes the existing file behind h and reports its parameters in info.
func (l *Library) load(h *handle, info *native.Info) int {
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return codeSystem
	}

	hdr := make([]byte, headerProbe)
	n, err := io.ReadFull(h.file, hdr)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return codeSystem
	}
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return codeSystem
	}

	entry, ok := l.reg.detect(hdr[:n])
	if !ok {
		h.logf("Unknown header : % x\n", hdr[:n])
		return codeUnrecognisedFormat
	}
	if h.mode == native.ModeReadWrite && !entry.writable() {
		return codeBadModeRW
	}

	stream, err := entry.decoder.Decode(h.file)
	if err != nil {
		h.logf("Error : %v\n", err)
		return codeFor(err)
	}
	if stream.Channels <= 0 || stream.Channels > maxChannels {
		return codeMalformedFile
	}
	if h.mode == native.ModeReadWrite && !entry.canWrite(stream.Subtype) {
		return codeBadModeRW
	}
	if stream.Tags == nil {
		stream.Tags = make(map[int]string)
	}

	h.entry = entry
	h.stream = stream

	*info = native.Info{
		Frames:     stream.Frames(),
		SampleRate: int32(stream.SampleRate),
		Channels:   int32(stream.Channels),
		Format:     entry.major | stream.Subtype,
		Sections:   1,
		Seekable:   native.True,
	}

	return codeNoError
}

// create prepares an empty stream described by info.
func (l *Library) create(h *handle, info *native.Info) int {
	if !l.FormatCheck(info) {
		return codeUnrecognisedFormat
	}

	entry, _ := l.reg.get(info.Format & native.FormatTypeMask)
	subtype := info.Format & native.FormatSubMask

	h.entry = entry
	h.stream = &pcm.Stream{
		SampleRate: int(info.SampleRate),
		Channels:   int(info.Channels),
		BitDepth:   bitDepths[subtype],
		Subtype:    subtype,
		Tags:       make(map[int]string),
	}
	// The header is written on close even when no frames are.
	h.dirty = true

	info.Frames = 0
	info.Sections = 1
	info.Seekable = native.True

	return codeNoError
}

func (l *Library) Error(h native.Handle) int {
	if h == nil {
		l.mu.Lock()
		defer l.mu.Unlock()

		return l.lastErr
	}

	if hh, ok := h.(*handle); ok {
		return hh.err
	}

	return codeNoError
}

func (l *Library) ErrorNumber(code int) string {
	return describe(code)
}

func (l *Library) FormatCheck(info *native.Info) bool {
	if info == nil {
		return false
	}
	if info.Channels < 1 || info.Channels > maxChannels || info.SampleRate < 1 {
		return false
	}
	if info.Format&^(native.FormatTypeMask|native.FormatSubMask|native.FormatEndMask) != 0 {
		return false
	}

	entry, ok := l.reg.get(info.Format & native.FormatTypeMask)
	if !ok || !entry.canWrite(info.Format&native.FormatSubMask) {
		return false
	}

	switch info.Format & native.FormatEndMask {
	case native.EndianFile:
		return true
	case native.EndianCPU:
		return entry.endian == hostEndian()
	default:
		return entry.endian == info.Format&native.FormatEndMask
	}
}

func (l *Library) Version() string {
	return Version
}

func (l *Library) MajorFormats() []native.FormatInfo {
	containers := l.reg.list()

	out := make([]native.FormatInfo, 0, len(containers))
	for _, c := range containers {
		out = append(out, native.FormatInfo{Format: c.major, Name: c.name, Extension: c.extension})
	}

	return out
}

func (l *Library) Subtypes() []native.FormatInfo {
	var subtypes []int32
	for _, c := range l.reg.list() {
		for _, st := range c.subtypes {
			if !slices.Contains(subtypes, st) {
				subtypes = append(subtypes, st)
			}
		}
	}
	// read-only encodings
	subtypes = append(subtypes, native.FormatVorbis, native.FormatMPEGLayerIII)
	slices.Sort(subtypes)

	out := make([]native.FormatInfo, 0, len(subtypes))
	for _, st := range subtypes {
		name, ok := subtypeNames[st]
		if !ok {
			name = fmt.Sprintf("Subtype 0x%04x", st)
		}
		out = append(out, native.FormatInfo{Format: st, Name: name})
	}

	return out
}

// hostEndian reports the native byte order as an endianness override.
func hostEndian() int32 {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return native.EndianLittle
	}

	return native.EndianBig
}
