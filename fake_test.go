// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"

	"github.com/ik5/sndfile/internal/native"
)

// fakeLibrary is a scripted native.Library. Open hands out handle, or nil
// with openErr recorded.
type fakeLibrary struct {
	handle  *fakeHandle
	openErr int
	info    native.Info
}

func (l *fakeLibrary) Open(_ string, _ int, info *native.Info) native.Handle {
	if l.handle == nil {
		return nil
	}
	*info = l.info

	return l.handle
}

func (l *fakeLibrary) OpenFd(_ int, mode int, info *native.Info, _ bool) native.Handle {
	return l.Open("", mode, info)
}

func (l *fakeLibrary) Error(h native.Handle) int {
	if h == nil {
		return l.openErr
	}

	return h.(*fakeHandle).err
}

func (l *fakeLibrary) ErrorNumber(code int) string       { return fmt.Sprintf("fake error %d", code) }
func (l *fakeLibrary) FormatCheck(*native.Info) bool     { return true }
func (l *fakeLibrary) Version() string                   { return "fake-1.0" }
func (l *fakeLibrary) MajorFormats() []native.FormatInfo { return nil }
func (l *fakeLibrary) Subtypes() []native.FormatInfo     { return nil }

// fakeHandle counts calls and returns scripted results.
type fakeHandle struct {
	err       int
	closeCode int
	setCode   int
	seekRet   int64
	closes    int
	calls     int
	lastCount int64
}

func (h *fakeHandle) Close() int {
	h.closes++
	return h.closeCode
}

func (h *fakeHandle) WriteSync() { h.calls++ }

func (h *fakeHandle) SeekFrames(int64, int) int64 {
	h.calls++
	return h.seekRet
}

func (h *fakeHandle) record(n int64) int64 {
	h.calls++
	h.lastCount = n
	return n
}

func (h *fakeHandle) ReadShort(_ []int16, n int64) int64    { return h.record(n) }
func (h *fakeHandle) ReadInt(_ []int32, n int64) int64      { return h.record(n) }
func (h *fakeHandle) ReadFloat(_ []float32, n int64) int64  { return h.record(n) }
func (h *fakeHandle) ReadDouble(_ []float64, n int64) int64 { return h.record(n) }

func (h *fakeHandle) ReadfShort(_ []int16, n int64) int64    { return h.record(n) }
func (h *fakeHandle) ReadfInt(_ []int32, n int64) int64      { return h.record(n) }
func (h *fakeHandle) ReadfFloat(_ []float32, n int64) int64  { return h.record(n) }
func (h *fakeHandle) ReadfDouble(_ []float64, n int64) int64 { return h.record(n) }

func (h *fakeHandle) WriteShort(_ []int16, n int64) int64    { return h.record(n) }
func (h *fakeHandle) WriteInt(_ []int32, n int64) int64      { return h.record(n) }
func (h *fakeHandle) WriteFloat(_ []float32, n int64) int64  { return h.record(n) }
func (h *fakeHandle) WriteDouble(_ []float64, n int64) int64 { return h.record(n) }

func (h *fakeHandle) WritefShort(_ []int16, n int64) int64    { return h.record(n) }
func (h *fakeHandle) WritefInt(_ []int32, n int64) int64      { return h.record(n) }
func (h *fakeHandle) WritefFloat(_ []float32, n int64) int64  { return h.record(n) }
func (h *fakeHandle) WritefDouble(_ []float64, n int64) int64 { return h.record(n) }

func (h *fakeHandle) GetString(int) (string, bool) {
	h.calls++
	return "", false
}

func (h *fakeHandle) SetString(int, string) int {
	h.calls++
	return h.setCode
}

func (h *fakeHandle) LogInfo() string {
	h.calls++
	return "fake log"
}
