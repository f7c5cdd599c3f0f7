// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"

	"github.com/ik5/sndfile/internal/native"
)

// TagKind selects one of the string metadata slots.
type TagKind int

const (
	TagTitle       TagKind = native.StrTitle
	TagCopyright   TagKind = native.StrCopyright
	TagSoftware    TagKind = native.StrSoftware
	TagArtist      TagKind = native.StrArtist
	TagComment     TagKind = native.StrComment
	TagDate        TagKind = native.StrDate
	TagAlbum       TagKind = native.StrAlbum
	TagLicense     TagKind = native.StrLicense
	TagTrackNumber TagKind = native.StrTrackNumber
	TagGenre       TagKind = native.StrGenre
)

// TagKinds lists every slot in library order.
var TagKinds = []TagKind{
	TagTitle, TagCopyright, TagSoftware, TagArtist, TagComment,
	TagDate, TagAlbum, TagLicense, TagTrackNumber, TagGenre,
}

func (k TagKind) String() string {
	switch k {
	case TagTitle:
		return "title"
	case TagCopyright:
		return "copyright"
	case TagSoftware:
		return "software"
	case TagArtist:
		return "artist"
	case TagComment:
		return "comment"
	case TagDate:
		return "date"
	case TagAlbum:
		return "album"
	case TagLicense:
		return "license"
	case TagTrackNumber:
		return "tracknumber"
	case TagGenre:
		return "genre"
	}

	return fmt.Sprintf("TagKind(%d)", int(k))
}
