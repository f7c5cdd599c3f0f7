// SPDX-License-Identifier: EPL-2.0

package gosf

import (
	"errors"

	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// Error codes. 0-4 are the public libsndfile codes; the rest are private to
// this backend and reach callers as internal errors.
const (
	codeNoError             = native.ErrNoError
	codeUnrecognisedFormat  = native.ErrUnrecognisedFormat
	codeSystem              = native.ErrSystem
	codeMalformedFile       = native.ErrMalformedFile
	codeUnsupportedEncoding = native.ErrUnsupportedEncoding

	codeBadReadAlign  = 19
	codeBadWriteAlign = 20
	codeNotReadMode   = 21
	codeNotWriteMode  = 22
	codeBadModeRW     = 23
	codeBadInfo       = 24
	codeBadOpenMode   = 25
	codeBadSeek       = 26
	codeStrNoSupport  = 27
	codeStrNotWrite   = 28
)

var descriptions = map[int]string{
	codeNoError:             "No Error.",
	codeUnrecognisedFormat:  "Format not recognised.",
	codeSystem:              "System error.",
	codeMalformedFile:       "Supported file format but file is malformed.",
	codeUnsupportedEncoding: "Supported file format but unsupported encoding.",
	codeBadReadAlign:        "Internal error : Bad read alignment.",
	codeBadWriteAlign:       "Internal error : Bad write alignment.",
	codeNotReadMode:         "Error : Attempting to read from file opened for write only.",
	codeNotWriteMode:        "Error : Attempting to write to file opened for read only.",
	codeBadModeRW:           "Error : This file format does not support read/write mode.",
	codeBadInfo:             "Internal error : Bad SF_INFO struct.",
	codeBadOpenMode:         "Error : bad mode parameter for file open.",
	codeBadSeek:             "Internal error : bad seek.",
	codeStrNoSupport:        "Error : File type does not support string data.",
	codeStrNotWrite:         "Error : Trying to set a string when file is not in write mode.",
}

func describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}

	return "No error defined for this error number. This is a bug in libsndfile."
}

// codeFor classifies a codec or file system error.
func codeFor(err error) int {
	switch {
	case err == nil:
		return codeNoError
	case errors.Is(err, pcm.ErrUnsupportedEncoding):
		return codeUnsupportedEncoding
	case errors.Is(err, pcm.ErrMalformed):
		return codeMalformedFile
	}

	return codeSystem
}
