// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"errors"
	"fmt"

	"github.com/ik5/sndfile/internal/native"
)

// ErrorKind classifies a failure reported by the sound file library.
type ErrorKind int

const (
	UnrecognisedFormat ErrorKind = iota + 1
	SystemError
	MalformedFile
	UnsupportedEncoding
	// InternalError covers every other library code. The code itself is
	// kept in Error.Code.
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognisedFormat:
		return "unrecognised format"
	case SystemError:
		return "system error"
	case MalformedFile:
		return "malformed file"
	case UnsupportedEncoding:
		return "unsupported encoding"
	case InternalError:
		return "internal error"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// NoErrorReported is the Code of the InternalError returned when the library
// produced no handle yet reported no error.
const NoErrorReported = -1

// Error is a failure reported by the sound file library.
type Error struct {
	Kind ErrorKind
	// Code is the raw library error code.
	Code int
	Op   string
	Path string
	// Description is the library's text for Code.
	Description string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Description != "" {
		msg = e.Description
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}

	switch {
	case e.Op != "" && e.Path != "":
		return "sndfile: " + e.Op + " " + e.Path + ": " + msg
	case e.Op != "":
		return "sndfile: " + e.Op + ": " + msg
	case e.Path != "":
		return "sndfile: " + e.Path + ": " + msg
	}

	return "sndfile: " + msg
}

// Is matches targets of the same kind. A target carrying a code matches only
// that code, so a sentinel like &Error{Kind: InternalError, Code: 21} can
// single out one internal failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}

	return t.Code == 0 || t.Code == e.Code
}

// Library failures, matched by kind through errors.Is.
var (
	ErrUnrecognisedFormat  = &Error{Kind: UnrecognisedFormat}
	ErrSystem              = &Error{Kind: SystemError}
	ErrMalformedFile       = &Error{Kind: MalformedFile}
	ErrUnsupportedEncoding = &Error{Kind: UnsupportedEncoding}
	ErrInternal            = &Error{Kind: InternalError}
)

// Usage errors detected before the library is called.
var (
	ErrClosed        = errors.New("sndfile: file already closed")
	ErrShortBuffer   = errors.New("sndfile: count exceeds buffer length")
	ErrNegativeCount = errors.New("sndfile: negative count")
)

func kindOf(code int) ErrorKind {
	switch code {
	case native.ErrUnrecognisedFormat:
		return UnrecognisedFormat
	case native.ErrSystem:
		return SystemError
	case native.ErrMalformedFile:
		return MalformedFile
	case native.ErrUnsupportedEncoding:
		return UnsupportedEncoding
	}

	return InternalError
}

// codeError maps a library code to an error. Code 0 is nil.
func codeError(lib native.Library, op, path string, code int) error {
	if code == native.ErrNoError {
		return nil
	}

	return &Error{
		Kind:        kindOf(code),
		Code:        code,
		Op:          op,
		Path:        path,
		Description: lib.ErrorNumber(code),
	}
}
