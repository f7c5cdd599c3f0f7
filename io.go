// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/sndfile/internal/native"

// Sample transfer.
//
// The plain methods count items, single samples across all channels; the
// Frames methods count frames, one sample per channel. Item counts must be
// a multiple of the channel count. The returned count is what the library
// moved, which is short at end of file without that being an error. The
// error result is only for calls the library never sees: a closed file, a
// negative count, or a buffer smaller than the count.

// transfer validates a request against buf and runs call on the handle.
func transfer[T any](f *File, buf []T, count int64, frames bool, call func(h native.Handle) int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, err := f.handle()
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, ErrNegativeCount
	}

	limit := int64(len(buf))
	if frames {
		limit /= max(int64(f.info.Channels), 1)
	}
	if count > limit {
		return 0, ErrShortBuffer
	}

	return call(h), nil
}

// ReadInt16 reads count items into buf.
func (f *File) ReadInt16(buf []int16, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.ReadShort(buf, count) })
}

// ReadInt32 reads count items into buf.
func (f *File) ReadInt32(buf []int32, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.ReadInt(buf, count) })
}

// ReadFloat32 reads count items into buf.
func (f *File) ReadFloat32(buf []float32, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.ReadFloat(buf, count) })
}

// ReadFloat64 reads count items into buf.
func (f *File) ReadFloat64(buf []float64, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.ReadDouble(buf, count) })
}

// ReadFramesInt16 reads count frames into buf.
func (f *File) ReadFramesInt16(buf []int16, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.ReadfShort(buf, count) })
}

// ReadFramesInt32 reads count frames into buf.
func (f *File) ReadFramesInt32(buf []int32, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.ReadfInt(buf, count) })
}

// ReadFramesFloat32 reads count frames into buf.
func (f *File) ReadFramesFloat32(buf []float32, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.ReadfFloat(buf, count) })
}

// ReadFramesFloat64 reads count frames into buf.
func (f *File) ReadFramesFloat64(buf []float64, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.ReadfDouble(buf, count) })
}

// WriteInt16 writes count items from buf.
func (f *File) WriteInt16(buf []int16, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.WriteShort(buf, count) })
}

// WriteInt32 writes count items from buf.
func (f *File) WriteInt32(buf []int32, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.WriteInt(buf, count) })
}

// WriteFloat32 writes count items from buf.
func (f *File) WriteFloat32(buf []float32, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.WriteFloat(buf, count) })
}

// WriteFloat64 writes count items from buf.
func (f *File) WriteFloat64(buf []float64, count int64) (int64, error) {
	return transfer(f, buf, count, false, func(h native.Handle) int64 { return h.WriteDouble(buf, count) })
}

// WriteFramesInt16 writes count frames from buf.
func (f *File) WriteFramesInt16(buf []int16, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.WritefShort(buf, count) })
}

// WriteFramesInt32 writes count frames from buf.
func (f *File) WriteFramesInt32(buf []int32, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.WritefInt(buf, count) })
}

// WriteFramesFloat32 writes count frames from buf.
func (f *File) WriteFramesFloat32(buf []float32, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.WritefFloat(buf, count) })
}

// WriteFramesFloat64 writes count frames from buf.
func (f *File) WriteFramesFloat64(buf []float64, count int64) (int64, error) {
	return transfer(f, buf, count, true, func(h native.Handle) int64 { return h.WritefDouble(buf, count) })
}
