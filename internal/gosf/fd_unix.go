// SPDX-License-Identifier: EPL-2.0

//go:build unix

package gosf

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// fdFile wraps fd in an *os.File. When the caller keeps ownership the
// descriptor is duplicated first so closing the handle leaves fd open.
func fdFile(fd int, closeFd bool) (*os.File, error) {
	if fd < 0 {
		return nil, unix.EBADF
	}

	if !closeFd {
		dup, err := unix.Dup(fd)
		if err != nil {
			return nil, err
		}
		fd = dup
	}

	return os.NewFile(uintptr(fd), "fd:"+strconv.Itoa(fd)), nil
}
