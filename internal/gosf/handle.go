// SPDX-License-Identifier: EPL-2.0

package gosf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

var _ native.Handle = (*handle)(nil)

// handle is one open file. Its stream holds every sample in memory and pos
// is the frame cursor shared by reads and writes.
type handle struct {
	file   *os.File
	mode   int
	entry  *container
	stream *pcm.Stream
	pos    int64
	err    int
	dirty  bool
	log    strings.Builder
}

func (h *handle) logf(format string, args ...any) {
	fmt.Fprintf(&h.log, format, args...)
}

// fail records code as the handle error and returns it. Seeks, transfers
// and SetString clear the error on entry; Library.Error only reads it.
func (h *handle) fail(code int, err error) int {
	h.err = code
	if err != nil {
		h.logf("Error : %v\n", err)
	}

	return code
}

func (h *handle) writable() bool {
	return h.mode == native.ModeWrite || h.mode == native.ModeReadWrite
}

// flush rewrites the whole file from the in-memory stream.
func (h *handle) flush() int {
	if !h.writable() || !h.dirty {
		return codeNoError
	}

	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return h.fail(codeSystem, err)
	}
	if err := h.file.Truncate(0); err != nil {
		return h.fail(codeSystem, err)
	}
	if err := h.entry.encoder.Encode(h.file, h.stream); err != nil {
		return h.fail(codeFor(err), err)
	}

	h.dirty = false
	return codeNoError
}

func (h *handle) Close() int {
	code := h.flush()

	if err := h.file.Close(); err != nil && code == codeNoError {
		code = h.fail(codeSystem, err)
	}

	return code
}

func (h *handle) WriteSync() {
	if h.flush() == codeNoError && h.writable() {
		_ = h.file.Sync()
	}
}

func (h *handle) SeekFrames(frames int64, whence int) int64 {
	h.err = codeNoError

	var base int64
	switch whence {
	case native.SeekSet:
	case native.SeekCur:
		base = h.pos
	case native.SeekEnd:
		base = h.stream.Frames()
	default:
		h.fail(codeBadSeek, nil)
		return -1
	}

	target := base + frames
	if target < 0 || target > h.stream.Frames() {
		h.fail(codeBadSeek, nil)
		return -1
	}

	h.pos = target
	return target
}

func (h *handle) GetString(kind int) (string, bool) {
	v, ok := h.stream.Tags[kind]
	if !ok || v == "" {
		return "", false
	}

	return v, true
}

func (h *handle) SetString(kind int, value string) int {
	h.err = codeNoError
	if !h.writable() {
		return h.fail(codeStrNotWrite, nil)
	}
	if !h.entry.supportsTag(kind) {
		return h.fail(codeStrNoSupport, nil)
	}

	if value == "" {
		delete(h.stream.Tags, kind)
	} else {
		h.stream.Tags[kind] = value
	}
	h.dirty = true

	return codeNoError
}

func (h *handle) LogInfo() string {
	return h.log.String()
}
