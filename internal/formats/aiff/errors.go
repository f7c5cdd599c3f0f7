// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/sndfile/internal/pcm"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = fmt.Errorf("not an AIFF file: %w", pcm.ErrMalformed)

	// ErrUnsupportedAiffLayout indicates an AIFF without a usable COMM chunk
	ErrUnsupportedAiffLayout = fmt.Errorf("unsupported AIFF layout: %w", pcm.ErrMalformed)

	// ErrUnsupportedBitDepth indicates a sample size other than 8, 16, 24 or 32 bits
	ErrUnsupportedBitDepth = fmt.Errorf("unsupported AIFF bit depth: %w", pcm.ErrUnsupportedEncoding)

	// ErrUnsupportedSubtype indicates an encoding the encoder cannot produce
	ErrUnsupportedSubtype = fmt.Errorf("subtype cannot be written to AIFF: %w", pcm.ErrUnsupportedEncoding)
)
