// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/sndfile/internal/native"

// defaultLibrary is the backend selected at build time.
var defaultLibrary native.Library = newDefaultLibrary()

// FormatInfo is one entry of the library's format table.
type FormatInfo struct {
	Format    Format
	Name      string
	Extension string
}

// FormatCheck reports whether the library can write a file described by
// info. It needs no open file.
func FormatCheck(info Info) bool {
	ni := info.native()
	return defaultLibrary.FormatCheck(&ni)
}

// Version returns the library's version string.
func Version() string {
	return defaultLibrary.Version()
}

// MajorFormats lists the containers the library knows.
func MajorFormats() []FormatInfo {
	return formatTable(defaultLibrary.MajorFormats())
}

// Subtypes lists the sample encodings the library knows.
func Subtypes() []FormatInfo {
	return formatTable(defaultLibrary.Subtypes())
}

func formatTable(in []native.FormatInfo) []FormatInfo {
	out := make([]FormatInfo, len(in))
	for i, fi := range in {
		out[i] = FormatInfo{
			Format:    ParseFormat(fi.Format),
			Name:      fi.Name,
			Extension: fi.Extension,
		}
	}

	return out
}
