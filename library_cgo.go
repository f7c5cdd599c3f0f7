// SPDX-License-Identifier: EPL-2.0

//go:build libsndfile && cgo

package sndfile

import (
	"github.com/ik5/sndfile/internal/libsndfile"
	"github.com/ik5/sndfile/internal/native"
)

func newDefaultLibrary() native.Library {
	return libsndfile.New()
}
