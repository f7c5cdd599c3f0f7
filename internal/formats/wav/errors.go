// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/sndfile/internal/pcm"
)

var (
	ErrNotWavFile           = fmt.Errorf("not a WAV file: %w", pcm.ErrMalformed)
	ErrUnsupportedFormatTag = fmt.Errorf("unsupported WAV format tag: %w", pcm.ErrUnsupportedEncoding)
	ErrUnsupportedBitDepth  = fmt.Errorf("unsupported WAV bit depth: %w", pcm.ErrUnsupportedEncoding)
	ErrUnsupportedSubtype   = fmt.Errorf("subtype cannot be written to WAV: %w", pcm.ErrUnsupportedEncoding)
	ErrNoChannels           = fmt.Errorf("WAV stream has no channels: %w", pcm.ErrMalformed)
)
