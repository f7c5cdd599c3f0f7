// SPDX-License-Identifier: EPL-2.0

package gosf

import (
	"bytes"
	"io"
	"slices"
	"sync"

	"github.com/ik5/sndfile/internal/formats/aiff"
	"github.com/ik5/sndfile/internal/formats/mp3"
	"github.com/ik5/sndfile/internal/formats/vorbis"
	"github.com/ik5/sndfile/internal/formats/wav"
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// Decoder turns a whole file into a pcm.Stream.
type Decoder interface {
	Decode(r io.ReadSeeker) (*pcm.Stream, error)
}

// Encoder writes a whole pcm.Stream to w.
type Encoder interface {
	Encode(w io.WriteSeeker, s *pcm.Stream) error
}

// container describes one major format the backend understands.
type container struct {
	major     int32
	name      string
	extension string
	// endian is the byte order the container stores samples in.
	endian  int32
	decoder Decoder
	// encoder is nil for read-only containers.
	encoder  Encoder
	subtypes []int32
	tags     []int
	sniff    func(hdr []byte) bool
}

func (c *container) writable() bool { return c.encoder != nil }

func (c *container) canWrite(subtype int32) bool {
	return c.writable() && slices.Contains(c.subtypes, subtype)
}

func (c *container) supportsTag(kind int) bool {
	return c.writable() && slices.Contains(c.tags, kind)
}

// registry holds containers by major format, in registration order.
type registry struct {
	containers map[int32]*container
	order      []int32

	mtx *sync.Mutex
}

func newRegistry() *registry {
	return &registry{
		containers: make(map[int32]*container),
		mtx:        &sync.Mutex{},
	}
}

func (r *registry) register(c *container) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.containers[c.major]; !ok {
		r.order = append(r.order, c.major)
	}
	r.containers[c.major] = c
}

func (r *registry) get(major int32) (*container, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.containers[major]
	return c, ok
}

// detect picks the container whose signature matches hdr.
func (r *registry) detect(hdr []byte) (*container, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, major := range r.order {
		c := r.containers[major]
		if c.sniff != nil && c.sniff(hdr) {
			return c, true
		}
	}

	return nil, false
}

func (r *registry) list() []*container {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]*container, 0, len(r.order))
	for _, major := range r.order {
		out = append(out, r.containers[major])
	}

	return out
}

// defaultRegistry registers every container this backend ships with.
func defaultRegistry() *registry {
	reg := newRegistry()

	reg.register(&container{
		major:     native.FormatWAV,
		name:      "WAV (Microsoft)",
		extension: "wav",
		endian:    native.EndianLittle,
		decoder:   wav.Decoder{},
		encoder:   wav.Encoder{},
		subtypes:  wav.Subtypes(),
		tags:      wav.SupportedTags(),
		sniff: func(hdr []byte) bool {
			return len(hdr) >= 12 && bytes.Equal(hdr[:4], []byte("RIFF")) && bytes.Equal(hdr[8:12], []byte("WAVE"))
		},
	})

	reg.register(&container{
		major:     native.FormatAIFF,
		name:      "AIFF (Apple/SGI)",
		extension: "aiff",
		endian:    native.EndianBig,
		decoder:   aiff.Decoder{},
		encoder:   aiff.Encoder{},
		subtypes:  aiff.Subtypes(),
		sniff: func(hdr []byte) bool {
			if len(hdr) < 12 || !bytes.Equal(hdr[:4], []byte("FORM")) {
				return false
			}
			kind := string(hdr[8:12])
			return kind == "AIFF" || kind == "AIFC"
		},
	})

	reg.register(&container{
		major:     native.FormatOGG,
		name:      "OGG (OGG Container format)",
		extension: "oga",
		endian:    native.EndianFile,
		decoder:   vorbis.Decoder{},
		sniff: func(hdr []byte) bool {
			return bytes.HasPrefix(hdr, []byte("OggS"))
		},
	})

	reg.register(&container{
		major:     native.FormatMPEG,
		name:      "MPEG-1/2 Audio",
		extension: "m1a",
		endian:    native.EndianFile,
		decoder:   mp3.Decoder{},
		sniff: func(hdr []byte) bool {
			if bytes.HasPrefix(hdr, []byte("ID3")) {
				return true
			}
			return len(hdr) >= 2 && hdr[0] == 0xFF && hdr[1]&0xE0 == 0xE0
		},
	})

	return reg
}

// subtypeNames follows libsndfile's descriptions.
var subtypeNames = map[int32]string{
	native.FormatPCMS8:        "Signed 8 bit PCM",
	native.FormatPCM16:        "Signed 16 bit PCM",
	native.FormatPCM24:        "Signed 24 bit PCM",
	native.FormatPCM32:        "Signed 32 bit PCM",
	native.FormatPCMU8:        "Unsigned 8 bit PCM",
	native.FormatVorbis:       "Vorbis",
	native.FormatMPEGLayerIII: "MPEG Layer III",
}

// bitDepths gives the integer precision of the writable subtypes.
var bitDepths = map[int32]int{
	native.FormatPCMS8: 8,
	native.FormatPCMU8: 8,
	native.FormatPCM16: 16,
	native.FormatPCM24: 24,
	native.FormatPCM32: 32,
}
