// SPDX-License-Identifier: EPL-2.0

// Package tags reads ID3 and Vorbis comment metadata into native string
// kinds for containers whose codecs do not expose it themselves.
package tags

import (
	"io"
	"strconv"

	"github.com/dhowden/tag"
	"github.com/ik5/sndfile/internal/native"
)

// Read returns the strings found in r and rewinds r to the start. Files with
// no readable metadata yield an empty map.
func Read(r io.ReadSeeker) (map[int]string, error) {
	out := make(map[int]string)

	m, err := tag.ReadFrom(r)
	if _, serr := r.Seek(0, io.SeekStart); serr != nil {
		return nil, serr
	}
	if err != nil {
		return out, nil
	}

	put := func(kind int, value string) {
		if value != "" {
			out[kind] = value
		}
	}

	put(native.StrTitle, m.Title())
	put(native.StrArtist, m.Artist())
	put(native.StrAlbum, m.Album())
	put(native.StrGenre, m.Genre())
	put(native.StrComment, m.Comment())

	if year := m.Year(); year > 0 {
		put(native.StrDate, strconv.Itoa(year))
	}
	if track, _ := m.Track(); track > 0 {
		put(native.StrTrackNumber, strconv.Itoa(track))
	}

	return out, nil
}
