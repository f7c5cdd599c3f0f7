// SPDX-License-Identifier: EPL-2.0

//go:build !unix

package gosf

import (
	"errors"
	"os"
)

var errNoDescriptors = errors.New("opening by descriptor is not supported on this platform")

func fdFile(int, bool) (*os.File, error) {
	return nil, errNoDescriptors
}
