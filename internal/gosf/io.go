// SPDX-License-Identifier: EPL-2.0

package gosf

import (
	"github.com/ik5/sndfile/internal/native"
	"github.com/ik5/sndfile/internal/pcm"
)

// readItems copies up to items samples from the cursor through store and
// advances the cursor by whole frames. A short count at end of file is not
// an error.
func (h *handle) readItems(items int64, limit int, store func(i int, x float64)) int64 {
	h.err = codeNoError
	if h.mode == native.ModeWrite {
		h.fail(codeNotReadMode, nil)
		return 0
	}

	ch := int64(h.stream.Channels)
	if items < 0 || items%ch != 0 {
		h.fail(codeBadReadAlign, nil)
		return 0
	}

	items = min(items, int64(limit)/ch*ch)
	start := h.pos * ch
	n := min(items, max(int64(len(h.stream.Samples))-start, 0))

	for i := range n {
		store(int(i), h.stream.Samples[start+i])
	}
	h.pos += n / ch

	return n
}

// writeItems stores items samples at the cursor, growing the stream when the
// cursor reaches its end.
func (h *handle) writeItems(items int64, limit int, load func(i int) float64) int64 {
	h.err = codeNoError
	if h.mode == native.ModeRead {
		h.fail(codeNotWriteMode, nil)
		return 0
	}

	ch := int64(h.stream.Channels)
	if items < 0 || items%ch != 0 {
		h.fail(codeBadWriteAlign, nil)
		return 0
	}

	items = min(items, int64(limit)/ch*ch)
	start := h.pos * ch
	if grow := start + items - int64(len(h.stream.Samples)); grow > 0 {
		h.stream.Samples = append(h.stream.Samples, make([]float64, grow)...)
	}

	for i := range items {
		h.stream.Samples[start+i] = pcm.Quantize(load(int(i)), h.stream.BitDepth)
	}
	h.pos += items / ch
	if items > 0 {
		h.dirty = true
	}

	return items
}

func readInto[T any](h *handle, p []T, items int64, conv func(float64) T) int64 {
	return h.readItems(items, len(p), func(i int, x float64) { p[i] = conv(x) })
}

func writeFrom[T any](h *handle, p []T, items int64, conv func(T) float64) int64 {
	return h.writeItems(items, len(p), func(i int) float64 { return conv(p[i]) })
}

func identity(x float64) float64 { return x }

func (h *handle) frames(items int64) int64 {
	return items / int64(h.stream.Channels)
}

func (h *handle) items(frames int64) int64 {
	if frames < 0 {
		return -1
	}

	return frames * int64(h.stream.Channels)
}

func (h *handle) ReadShort(p []int16, items int64) int64 {
	return readInto(h, p, items, pcm.ToInt16)
}

func (h *handle) ReadInt(p []int32, items int64) int64 {
	return readInto(h, p, items, pcm.ToInt32)
}

func (h *handle) ReadFloat(p []float32, items int64) int64 {
	return readInto(h, p, items, pcm.ToFloat32)
}

func (h *handle) ReadDouble(p []float64, items int64) int64 {
	return readInto(h, p, items, identity)
}

func (h *handle) ReadfShort(p []int16, frames int64) int64 {
	return h.frames(readInto(h, p, h.items(frames), pcm.ToInt16))
}

func (h *handle) ReadfInt(p []int32, frames int64) int64 {
	return h.frames(readInto(h, p, h.items(frames), pcm.ToInt32))
}

func (h *handle) ReadfFloat(p []float32, frames int64) int64 {
	return h.frames(readInto(h, p, h.items(frames), pcm.ToFloat32))
}

func (h *handle) ReadfDouble(p []float64, frames int64) int64 {
	return h.frames(readInto(h, p, h.items(frames), identity))
}

func (h *handle) WriteShort(p []int16, items int64) int64 {
	return writeFrom(h, p, items, pcm.FromInt16)
}

func (h *handle) WriteInt(p []int32, items int64) int64 {
	return writeFrom(h, p, items, pcm.FromInt32)
}

func (h *handle) WriteFloat(p []float32, items int64) int64 {
	return writeFrom(h, p, items, pcm.FromFloat32)
}

func (h *handle) WriteDouble(p []float64, items int64) int64 {
	return writeFrom(h, p, items, identity)
}

func (h *handle) WritefShort(p []int16, frames int64) int64 {
	return h.frames(writeFrom(h, p, h.items(frames), pcm.FromInt16))
}

func (h *handle) WritefInt(p []int32, frames int64) int64 {
	return h.frames(writeFrom(h, p, h.items(frames), pcm.FromInt32))
}

func (h *handle) WritefFloat(p []float32, frames int64) int64 {
	return h.frames(writeFrom(h, p, h.items(frames), pcm.FromFloat32))
}

func (h *handle) WritefDouble(p []float64, frames int64) int64 {
	return h.frames(writeFrom(h, p, h.items(frames), identity))
}
