package loaderr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{NotFound, "not found"},
		{ParseError, "parse error"},
		{UnsupportedImage, "unsupported image"},
		{AllocError, "allocation error"},
		{LayoutError, "layout error"},
		{InitFailed, "init failed"},
		{Kind(99), "unknown error"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := c.kind.String(); got != c.want {
				t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	bare := New(NotFound, "no such file")
	if got, want := bare.Error(), "not found: no such file"; got != want {
		t.Errorf("bare.Error() = %q, want %q", got, want)
	}

	cause := errors.New("ENOENT")
	wrapped := Wrap(NotFound, "no such file", cause)
	if got, want := wrapped.Error(), "not found: no such file: ENOENT"; got != want {
		t.Errorf("wrapped.Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("errors.Is(wrapped, cause) = false, want true")
	}
}

func TestNewfAndWrapf(t *testing.T) {
	err := Newf(LayoutError, "section %s out of bounds at %d", "text", 128)
	want := "layout error: section text out of bounds at 128"
	if err.Error() != want {
		t.Errorf("Newf formatted message = %q, want %q", err.Error(), want)
	}

	cause := fmt.Errorf("underlying")
	wrapped := Wrapf(ParseError, cause, "open %s", "foo.dll")
	if wrapped.Cause != cause {
		t.Errorf("Wrapf did not retain cause")
	}
}

func TestOf(t *testing.T) {
	err := New(UnsupportedImage, "bad machine type")
	kind, ok := Of(err)
	if !ok || kind != UnsupportedImage {
		t.Fatalf("Of(err) = (%v, %v), want (%v, true)", kind, ok, UnsupportedImage)
	}

	wrapped := fmt.Errorf("context: %w", err)
	kind, ok = Of(wrapped)
	if !ok || kind != UnsupportedImage {
		t.Fatalf("Of(wrapped) = (%v, %v), want (%v, true)", kind, ok, UnsupportedImage)
	}

	if _, ok := Of(errors.New("plain")); ok {
		t.Errorf("Of(plain error) reported ok=true, want false")
	}
}

func TestIs(t *testing.T) {
	a := New(AllocError, "mmap failed")
	b := New(AllocError, "a different message")
	c := New(NotFound, "")

	if !errors.Is(a, b) {
		t.Errorf("errors.Is(a, b) = false, want true (same Kind)")
	}
	if errors.Is(a, c) {
		t.Errorf("errors.Is(a, c) = true, want false (different Kind)")
	}
}
