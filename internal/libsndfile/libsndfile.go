// SPDX-License-Identifier: EPL-2.0

//go:build libsndfile && cgo

// Package libsndfile binds the C libsndfile library to the native interfaces.
// Build with -tags libsndfile; pkg-config must find sndfile.
package libsndfile

/*
#cgo pkg-config: sndfile
#include <stdlib.h>
#include <sndfile.h>
*/
import "C"

import (
	"unsafe"

	"github.com/ik5/sndfile/internal/native"
)

const (
	versionBufSize = 128
	logBufSize     = 16 * 1024
)

var (
	_ native.Library = (*Library)(nil)
	_ native.Handle  = (*handle)(nil)
)

// Library calls straight into libsndfile. It holds no state of its own.
type Library struct{}

func New() *Library {
	return &Library{}
}

func toC(info *native.Info) C.SF_INFO {
	return C.SF_INFO{
		frames:     C.sf_count_t(info.Frames),
		samplerate: C.int(info.SampleRate),
		channels:   C.int(info.Channels),
		format:     C.int(info.Format),
		sections:   C.int(info.Sections),
		seekable:   C.int(info.Seekable),
	}
}

func fromC(ci *C.SF_INFO, info *native.Info) {
	*info = native.Info{
		Frames:     int64(ci.frames),
		SampleRate: int32(ci.samplerate),
		Channels:   int32(ci.channels),
		Format:     int32(ci.format),
		Sections:   int32(ci.sections),
		Seekable:   int32(ci.seekable),
	}
}

// ptr returns the address of the first element, or nil for an empty slice.
func ptr[T any](p []T) unsafe.Pointer {
	if len(p) == 0 {
		return nil
	}

	return unsafe.Pointer(&p[0])
}

func (*Library) Open(path string, mode int, info *native.Info) native.Handle {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ci := toC(info)
	sf := C.sf_open(cpath, C.int(mode), &ci)
	if sf == nil {
		return nil
	}
	fromC(&ci, info)

	return &handle{sf: sf}
}

func (*Library) OpenFd(fd int, mode int, info *native.Info, closeFd bool) native.Handle {
	closeDesc := C.int(C.SF_FALSE)
	if closeFd {
		closeDesc = C.int(C.SF_TRUE)
	}

	ci := toC(info)
	sf := C.sf_open_fd(C.int(fd), C.int(mode), &ci, closeDesc)
	if sf == nil {
		return nil
	}
	fromC(&ci, info)

	return &handle{sf: sf}
}

func (*Library) Error(h native.Handle) int {
	if hh, ok := h.(*handle); ok && hh != nil {
		return int(C.sf_error(hh.sf))
	}

	return int(C.sf_error(nil))
}

func (*Library) ErrorNumber(code int) string {
	return C.GoString(C.sf_error_number(C.int(code)))
}

func (*Library) FormatCheck(info *native.Info) bool {
	ci := toC(info)
	return C.sf_format_check(&ci) == C.SF_TRUE
}

func (*Library) Version() string {
	buf := make([]byte, versionBufSize)
	C.sf_command(nil, C.SFC_GET_LIB_VERSION, ptr(buf), C.int(len(buf)))

	return C.GoString((*C.char)(ptr(buf)))
}

func (*Library) MajorFormats() []native.FormatInfo {
	return formatTable(C.SFC_GET_FORMAT_MAJOR_COUNT, C.SFC_GET_FORMAT_MAJOR)
}

func (*Library) Subtypes() []native.FormatInfo {
	return formatTable(C.SFC_GET_FORMAT_SUBTYPE_COUNT, C.SFC_GET_FORMAT_SUBTYPE)
}

func formatTable(countCmd, entryCmd C.int) []native.FormatInfo {
	var count C.int
	C.sf_command(nil, countCmd, unsafe.Pointer(&count), C.int(unsafe.Sizeof(count)))

	out := make([]native.FormatInfo, 0, int(count))
	for i := range int(count) {
		var fi C.SF_FORMAT_INFO
		fi.format = C.int(i)
		if C.sf_command(nil, entryCmd, unsafe.Pointer(&fi), C.int(unsafe.Sizeof(fi))) != 0 {
			continue
		}

		out = append(out, native.FormatInfo{
			Format:    int32(fi.format),
			Name:      C.GoString(fi.name),
			Extension: C.GoString(fi.extension),
		})
	}

	return out
}

type handle struct {
	sf *C.SNDFILE
}

func (h *handle) Close() int {
	return int(C.sf_close(h.sf))
}

func (h *handle) WriteSync() {
	C.sf_write_sync(h.sf)
}

func (h *handle) SeekFrames(frames int64, whence int) int64 {
	return int64(C.sf_seek(h.sf, C.sf_count_t(frames), C.int(whence)))
}

func (h *handle) ReadShort(p []int16, items int64) int64 {
	return int64(C.sf_read_short(h.sf, (*C.short)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) ReadInt(p []int32, items int64) int64 {
	return int64(C.sf_read_int(h.sf, (*C.int)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) ReadFloat(p []float32, items int64) int64 {
	return int64(C.sf_read_float(h.sf, (*C.float)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) ReadDouble(p []float64, items int64) int64 {
	return int64(C.sf_read_double(h.sf, (*C.double)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) ReadfShort(p []int16, frames int64) int64 {
	return int64(C.sf_readf_short(h.sf, (*C.short)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) ReadfInt(p []int32, frames int64) int64 {
	return int64(C.sf_readf_int(h.sf, (*C.int)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) ReadfFloat(p []float32, frames int64) int64 {
	return int64(C.sf_readf_float(h.sf, (*C.float)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) ReadfDouble(p []float64, frames int64) int64 {
	return int64(C.sf_readf_double(h.sf, (*C.double)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) WriteShort(p []int16, items int64) int64 {
	return int64(C.sf_write_short(h.sf, (*C.short)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) WriteInt(p []int32, items int64) int64 {
	return int64(C.sf_write_int(h.sf, (*C.int)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) WriteFloat(p []float32, items int64) int64 {
	return int64(C.sf_write_float(h.sf, (*C.float)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) WriteDouble(p []float64, items int64) int64 {
	return int64(C.sf_write_double(h.sf, (*C.double)(ptr(p)), C.sf_count_t(items)))
}

func (h *handle) WritefShort(p []int16, frames int64) int64 {
	return int64(C.sf_writef_short(h.sf, (*C.short)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) WritefInt(p []int32, frames int64) int64 {
	return int64(C.sf_writef_int(h.sf, (*C.int)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) WritefFloat(p []float32, frames int64) int64 {
	return int64(C.sf_writef_float(h.sf, (*C.float)(ptr(p)), C.sf_count_t(frames)))
}

func (h *handle) WritefDouble(p []float64, frames int64) int64 {
	return int64(C.sf_writef_double(h.sf, (*C.double)(ptr(p)), C.sf_count_t(frames)))
}

// GetString returns false when libsndfile hands back NULL. The C string is
// owned by the library.
func (h *handle) GetString(kind int) (string, bool) {
	cs := C.sf_get_string(h.sf, C.int(kind))
	if cs == nil {
		return "", false
	}

	return C.GoString(cs), true
}

func (h *handle) SetString(kind int, value string) int {
	cs := C.CString(value)
	defer C.free(unsafe.Pointer(cs))

	return int(C.sf_set_string(h.sf, C.int(kind), cs))
}

func (h *handle) LogInfo() string {
	buf := make([]byte, logBufSize)
	C.sf_command(h.sf, C.SFC_GET_LOG_INFO, ptr(buf), C.int(len(buf)))

	return C.GoString((*C.char)(ptr(buf)))
}
