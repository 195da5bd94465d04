package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies a failed fetch so callers can report a stable reason.
type Kind int

const (
	KindUnclassified Kind = iota
	KindInvalidScheme
	KindTransport
	KindHTTPStatus
	KindNotAnImage
	KindWrite
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindInvalidScheme:
		return "invalid scheme"
	case KindTransport:
		return "transport error"
	case KindHTTPStatus:
		return "http status error"
	case KindNotAnImage:
		return "not an image"
	case KindWrite:
		return "write error"
	case KindDirectory:
		return "directory error"
	default:
		return "unclassified error"
	}
}

// Error is a failed fetch outcome with its classification attached.
type Error struct {
	Kind Kind
	Err  error
}

func NewError(kind Kind, err error) *Error {
	return &Error{
		Kind: kind,
		Err:  err,
	}
}

func newErrorf(kind Kind, format string, args ...any) *Error {
	return NewError(kind, fmt.Errorf(format, args...))
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err. Errors that did not come out of
// the pipeline report KindUnclassified.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnclassified
}
