// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"

	"github.com/ik5/sndfile/internal/native"
)

// OpenMode is the access a file is opened with.
type OpenMode int

const (
	ModeRead      OpenMode = native.ModeRead
	ModeWrite     OpenMode = native.ModeWrite
	ModeReadWrite OpenMode = native.ModeReadWrite
)

func (m OpenMode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeReadWrite:
		return "read-write"
	}

	return fmt.Sprintf("OpenMode(0x%x)", int(m))
}

// SeekMode says what a seek offset is relative to.
type SeekMode int

const (
	SeekStart   SeekMode = native.SeekSet
	SeekCurrent SeekMode = native.SeekCur
	SeekEnd     SeekMode = native.SeekEnd
)
