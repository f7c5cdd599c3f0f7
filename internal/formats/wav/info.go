// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/sndfile/internal/native"
)

// maxListSize bounds how much of a LIST chunk is loaded into memory.
const maxListSize = 1 << 20

// infoIDs maps RIFF INFO sub-chunk ids to native string kinds.
var infoIDs = map[string]int{
	"INAM": native.StrTitle,
	"ICOP": native.StrCopyright,
	"ISFT": native.StrSoftware,
	"IART": native.StrArtist,
	"ICMT": native.StrComment,
	"ICRD": native.StrDate,
	"IPRD": native.StrAlbum,
	"ITRK": native.StrTrackNumber,
	"IGNR": native.StrGenre,
}

// SupportedTags lists the string kinds a WAV file can carry.
func SupportedTags() []int {
	return []int{
		native.StrTitle, native.StrCopyright, native.StrSoftware, native.StrArtist,
		native.StrComment, native.StrDate, native.StrAlbum, native.StrTrackNumber,
		native.StrGenre,
	}
}

// readInfoTags walks the RIFF chunks after the WAVE header and collects the
// strings of every LIST/INFO chunk.
func readInfoTags(r io.ReadSeeker) (map[int]string, error) {
	tags := make(map[int]string)

	if _, err := r.Seek(12, io.SeekStart); err != nil {
		return nil, err
	}

	hdr := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, hdr); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return tags, nil
			}
			return nil, err
		}

		id := string(hdr[:4])
		size := int64(binary.LittleEndian.Uint32(hdr[4:8]))

		if id == "LIST" && size >= 4 && size <= maxListSize {
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				// truncated trailing chunk, keep what we have
				return tags, nil
			}
			if string(body[:4]) == "INFO" {
				parseInfo(body[4:], tags)
			}
		} else if _, err := r.Seek(size, io.SeekCurrent); err != nil {
			return nil, err
		}

		if size%2 == 1 {
			if err := skipPad(r); err != nil {
				return tags, nil
			}
		}
	}
}

// skipPad consumes the pad byte after an odd-sized chunk. Some writers leave
// it out, so a non-zero byte is put back as the start of the next chunk id.
func skipPad(r io.ReadSeeker) error {
	b := make([]byte, 1)
	if _, err := io.ReadFull(r, b); err != nil {
		return err
	}
	if b[0] != 0 {
		_, err := r.Seek(-1, io.SeekCurrent)
		return err
	}

	return nil
}

// parseInfo reads the sub-chunks of an INFO list. An odd-sized entry may or
// may not be followed by a pad byte; chunk ids never start with NUL.
func parseInfo(body []byte, tags map[int]string) {
	for len(body) >= 8 {
		id := string(body[:4])
		size := int(binary.LittleEndian.Uint32(body[4:8]))
		body = body[8:]
		if size > len(body) {
			return
		}

		value := string(bytes.TrimRight(body[:size], "\x00"))
		if kind, ok := infoIDs[id]; ok && value != "" {
			tags[kind] = value
		}

		body = body[size:]
		if size%2 == 1 && len(body) > 0 && body[0] == 0 {
			body = body[1:]
		}
	}
}

// metadataFromTags builds the INFO strings written by the go-audio encoder.
func metadataFromTags(tags map[int]string) *wav.Metadata {
	if len(tags) == 0 {
		return nil
	}

	return &wav.Metadata{
		Title:        tags[native.StrTitle],
		Copyright:    tags[native.StrCopyright],
		Software:     tags[native.StrSoftware],
		Artist:       tags[native.StrArtist],
		Comments:     tags[native.StrComment],
		CreationDate: tags[native.StrDate],
		Product:      tags[native.StrAlbum],
		TrackNbr:     tags[native.StrTrackNumber],
		Genre:        tags[native.StrGenre],
	}
}
