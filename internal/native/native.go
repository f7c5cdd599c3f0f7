// SPDX-License-Identifier: EPL-2.0

// Package native describes the boundary between the sndfile wrapper and the
// sampled-audio library doing the real work.
//
// The contract follows libsndfile's C API: open calls return a nil Handle on
// failure and leave an error code queryable through Library.Error(nil), counts
// are 64-bit, errors are small integers, and a failed seek returns a negative
// position. Both the cgo binding and the portable backend implement it.
package native

// Info mirrors SF_INFO. The library fills it on read opens and validates it on
// write opens.
type Info struct {
	Frames     int64
	SampleRate int32
	Channels   int32
	Format     int32
	Sections   int32
	Seekable   int32
}

// FormatInfo mirrors SF_FORMAT_INFO as returned by the format table commands.
type FormatInfo struct {
	Format    int32
	Name      string
	Extension string
}

// Library is the process-wide side of the native API.
type Library interface {
	// Open returns nil on failure; the reason is available from Error(nil).
	Open(path string, mode int, info *Info) Handle
	// OpenFd is Open over an already open descriptor. When closeFd is true
	// the descriptor is closed together with the handle.
	OpenFd(fd int, mode int, info *Info, closeFd bool) Handle
	// Error returns the last error code for h, or the last open failure when
	// h is nil. It does not clear the recorded state.
	Error(h Handle) int
	// ErrorNumber describes an error code.
	ErrorNumber(code int) string
	FormatCheck(info *Info) bool
	Version() string
	MajorFormats() []FormatInfo
	Subtypes() []FormatInfo
}

// Handle is one opened sound file. Using a Handle after Close is undefined.
type Handle interface {
	Close() int
	WriteSync()
	SeekFrames(frames int64, whence int) int64

	ReadShort(p []int16, items int64) int64
	ReadInt(p []int32, items int64) int64
	ReadFloat(p []float32, items int64) int64
	ReadDouble(p []float64, items int64) int64

	ReadfShort(p []int16, frames int64) int64
	ReadfInt(p []int32, frames int64) int64
	ReadfFloat(p []float32, frames int64) int64
	ReadfDouble(p []float64, frames int64) int64

	WriteShort(p []int16, items int64) int64
	WriteInt(p []int32, items int64) int64
	WriteFloat(p []float32, items int64) int64
	WriteDouble(p []float64, items int64) int64

	WritefShort(p []int16, frames int64) int64
	WritefInt(p []int32, frames int64) int64
	WritefFloat(p []float32, frames int64) int64
	WritefDouble(p []float64, frames int64) int64

	// GetString reports false when the file carries no string of that kind.
	GetString(kind int) (string, bool)
	SetString(kind int, value string) int

	// LogInfo returns the library's log buffer for this handle.
	LogInfo() string
}
