// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrMalformed is wrapped by codec errors describing a damaged file.
	ErrMalformed = errors.New("malformed sound file")

	// ErrUnsupportedEncoding is wrapped by codec errors for sample encodings
	// the codec cannot handle.
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
)
