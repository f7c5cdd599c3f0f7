// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ossrs/go-oryx-lib/logger"
)

// File is an open sound file. It owns one library handle, released by Close
// or, if Close is never called, once the File is garbage collected.
//
// A File is meant for one goroutine at a time. Its methods are still
// serialised so a racing Close cannot free the handle under another call.
type File struct {
	mu      sync.Mutex
	ref     *handleRef
	cleanup runtime.Cleanup

	lib  native.Library
	path string
	info Info
	mode OpenMode
}

// handleRef is what the cleanup holds. It must not point back at the File.
type handleRef struct {
	h    native.Handle
	path string
}

func (r *handleRef) release() int {
	h := r.h
	r.h = nil

	return h.Close()
}

func leaked(r *handleRef) {
	if r.h == nil {
		return
	}

	ctx := logger.WithContext(context.Background())
	logger.Wf(ctx, "sndfile: %s was not closed, releasing it", r.path)
	r.release()
}

// Open opens the file at path. Write modes need WithInfo describing the
// file to create.
func Open(path string, mode OpenMode, opts ...Option) (*File, error) {
	o := buildOptions(opts)

	ni := o.info.native()
	h := o.lib.Open(path, int(mode), &ni)

	return newFile(o.lib, h, "open", path, mode, ni)
}

// OpenFd opens a file over an existing descriptor. With closeFd the
// descriptor is closed along with the File; otherwise it stays open for the
// caller.
func OpenFd(fd int, mode OpenMode, closeFd bool, opts ...Option) (*File, error) {
	o := buildOptions(opts)

	ni := o.info.native()
	h := o.lib.OpenFd(fd, int(mode), &ni, closeFd)

	return newFile(o.lib, h, "open", fmt.Sprintf("fd %d", fd), mode, ni)
}

func newFile(lib native.Library, h native.Handle, op, path string, mode OpenMode, ni native.Info) (*File, error) {
	if h == nil {
		code := lib.Error(nil)
		if code == native.ErrNoError {
			return nil, &Error{
				Kind:        InternalError,
				Code:        NoErrorReported,
				Op:          op,
				Path:        path,
				Description: "no handle returned and no error reported",
			}
		}

		return nil, codeError(lib, op, path, code)
	}

	ref := &handleRef{h: h, path: path}
	f := &File{
		ref:  ref,
		lib:  lib,
		path: path,
		info: infoFromNative(ni),
		mode: mode,
	}
	f.cleanup = runtime.AddCleanup(f, leaked, ref)

	return f, nil
}

// handle returns the live handle. Callers hold f.mu.
func (f *File) handle() (native.Handle, error) {
	if f.ref == nil {
		return nil, ErrClosed
	}

	return f.ref.h, nil
}

// Info returns the parameters captured when the file was opened.
func (f *File) Info() Info {
	return f.info
}

// Mode returns the access the file was opened with.
func (f *File) Mode() OpenMode {
	return f.mode
}

// Close releases the handle. Write modes flush pending data first. Calling
// Close again returns ErrClosed.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ref == nil {
		return ErrClosed
	}

	f.cleanup.Stop()
	code := f.ref.release()
	f.ref = nil

	return codeError(f.lib, "close", f.path, code)
}

// WriteSync asks the library to flush written data to disk. The library
// reports nothing back; check LastError if in doubt.
func (f *File) WriteSync() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return err
	}

	h.WriteSync()
	return nil
}

// SeekFrames moves the frame cursor and returns the library's answer as
// is: the new position counted from the start, or a negative value when the
// seek failed (see LastError). The error is only for calls on a closed file.
func (f *File) SeekFrames(frames int64, whence SeekMode) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return 0, err
	}

	return h.SeekFrames(frames, int(whence)), nil
}

// Tag returns the string stored in slot kind. The second result is false if
// the file has none or is closed.
func (f *File) Tag(kind TagKind) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return "", false
	}

	return h.GetString(int(kind))
}

// SetTag stores value in slot kind. The file must be open for writing.
func (f *File) SetTag(kind TagKind, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return err
	}

	return codeError(f.lib, "set tag "+kind.String(), f.path, h.SetString(int(kind), value))
}

// LastError returns the library's recorded error for this file, or nil.
//
// It only looks: the recorded state is left as is, so whether a second call
// returns the same error depends on the library. libsndfile keeps it until
// the next seek, transfer or SetTag, which clear it on entry.
func (f *File) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return err
	}

	return codeError(f.lib, "", f.path, f.lib.Error(h))
}

// LogInfo returns the library's log text for this file.
func (f *File) LogInfo() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return "", err
	}

	return h.LogInfo(), nil
}
