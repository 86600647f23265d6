// Package loaderr defines the semantic error kinds the loader can fail
// with, independent of where in the load pipeline they occur.
package loaderr

import "fmt"

// Kind classifies why a load (or a step within it) failed.
type Kind int

const (
	// NotFound means the library file could not be located on the search path.
	NotFound Kind = iota
	// ParseError means the file is not a recognizable PE32+ image.
	ParseError
	// UnsupportedImage means the machine type, relocation requirement, or a
	// relocation entry itself is something this loader cannot handle.
	UnsupportedImage
	// AllocError means a host VM reservation or permission change failed.
	AllocError
	// LayoutError means the image's declared layout is inconsistent
	// (headers larger than the image, a section outside its bounds).
	LayoutError
	// InitFailed means the DLL's entry point returned FALSE.
	InitFailed
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	case UnsupportedImage:
		return "unsupported image"
	case AllocError:
		return "allocation error"
	case LayoutError:
		return "layout error"
	case InitFailed:
		return "init failed"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every loader phase.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err carries the given Kind, so callers can write
// errors.Is(err, loaderr.New(loaderr.NotFound, "")) — more commonly they
// should use Of(err) instead.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that carries an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Wrapf builds an Error with a formatted message and an underlying cause.
func Wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Of reports the Kind of err if it is (or wraps) a *Error, and ok=false
// otherwise.
func Of(err error) (kind Kind, ok bool) {
	var e *Error
	for err != nil {
		if v, match := err.(*Error); match {
			e = v
			break
		}
		u, match := err.(interface{ Unwrap() error })
		if !match {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return 0, false
	}
	return e.Kind, true
}
