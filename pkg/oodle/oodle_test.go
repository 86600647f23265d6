package oodle

import (
	"testing"

	"github.com/clouds56-contrib/linoodle/internal/loaderr"
)

func TestBoolToUintptr(t *testing.T) {
	if got := boolToUintptr(true); got != 1 {
		t.Errorf("boolToUintptr(true) = %d, want 1", got)
	}
	if got := boolToUintptr(false); got != 0 {
		t.Errorf("boolToUintptr(false) = %d, want 0", got)
	}
}

// None of the exported functions can be exercised end-to-end here: doing
// so needs a real oo2core_6_win64.dll on disk, which this environment
// does not have. What every one of them must do without one is fail
// with a well-kinded error instead of panicking, and agree with each
// other once ensureLoaded's sync.Once has settled on that failure.

func TestDecompressWithoutLibraryReportsNotFound(t *testing.T) {
	_, err := Decompress(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	if err == nil {
		t.Fatal("Decompress succeeded without oo2core_6_win64.dll present, want an error")
	}
	if kind, ok := loaderr.Of(err); !ok || kind != loaderr.NotFound {
		t.Errorf("Decompress error kind = %v, want NotFound", kind)
	}
}

func TestCompressWithoutLibraryReportsSameCachedError(t *testing.T) {
	_, first := Decompress(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	_, second := Compress(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	if second == nil {
		t.Fatal("Compress succeeded without oo2core_6_win64.dll present, want an error")
	}
	// ensureLoaded's sync.Once means every caller after the first
	// observes the very same initErr value.
	if first.Error() != second.Error() {
		t.Errorf("Compress error = %q, want the same cached error as Decompress (%q)", second, first)
	}
}

func TestCompressOptionsGetDefaultWithoutLibraryReportsError(t *testing.T) {
	if _, err := CompressOptionsGetDefault(0, 0); err == nil {
		t.Error("CompressOptionsGetDefault succeeded without oo2core_6_win64.dll present, want an error")
	}
}

func TestGetCompressedBufferSizeNeededWithoutLibraryReportsError(t *testing.T) {
	if _, err := GetCompressedBufferSizeNeeded(1024); err == nil {
		t.Error("GetCompressedBufferSizeNeeded succeeded without oo2core_6_win64.dll present, want an error")
	}
}

func TestGetDecodeBufferSizeWithoutLibraryReportsError(t *testing.T) {
	if _, err := GetDecodeBufferSize(1024, true); err == nil {
		t.Error("GetDecodeBufferSize succeeded without oo2core_6_win64.dll present, want an error")
	}
}
