// SPDX-License-Identifier: EPL-2.0

//go:build libsndfile && cgo

package libsndfile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/sndfile/internal/native"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	if v := New().Version(); !strings.HasPrefix(v, "libsndfile") {
		t.Errorf("Version() = %q, want libsndfile prefix", v)
	}
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()

	lib := New()
	h := lib.Open(filepath.Join(t.TempDir(), "missing.wav"), native.ModeRead, &native.Info{})
	if h != nil {
		t.Fatal("Open() of a missing file returned a handle")
	}
	if code := lib.Error(nil); code != native.ErrSystem {
		t.Errorf("Error(nil) = %d, want %d", code, native.ErrSystem)
	}
}

func TestWriteRead(t *testing.T) {
	t.Parallel()

	lib := New()
	path := filepath.Join(t.TempDir(), "out.wav")
	info := &native.Info{SampleRate: 8000, Channels: 1, Format: native.FormatWAV | native.FormatPCM16}

	w := lib.Open(path, native.ModeWrite, info)
	if w == nil {
		t.Fatalf("Open() for write: %s", lib.ErrorNumber(lib.Error(nil)))
	}
	in := []int16{1, -1, 300}
	if n := w.WriteShort(in, 3); n != 3 {
		t.Fatalf("WriteShort() = %d, want 3", n)
	}
	if code := w.Close(); code != 0 {
		t.Fatalf("Close() = %d", code)
	}

	r := lib.Open(path, native.ModeRead, &native.Info{})
	if r == nil {
		t.Fatalf("Open() for read: %s", lib.ErrorNumber(lib.Error(nil)))
	}
	defer r.Close()

	out := make([]int16, 3)
	if n := r.ReadShort(out, 3); n != 3 {
		t.Fatalf("ReadShort() = %d, want 3", n)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("sample[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}
