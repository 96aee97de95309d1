package bbox

import (
	"errors"
	"fmt"
)

// Kind discriminates validation failures.
type Kind int

const (
	// KindInvalid marks a malformed box: wrong arity, non-finite values,
	// non-positive dimensions, or disallowed negative coordinates.
	KindInvalid Kind = iota
	// KindOutOfBounds marks a box that exceeds the declared image size under
	// strict bounds checking.
	KindOutOfBounds
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid bounding box"
	case KindOutOfBounds:
		return "bounding box out of bounds"
	default:
		return "bounding box validation error"
	}
}

// ValidationError is returned by the validating functions in this package.
// It carries the failure kind, the offending box when one could be
// destructured, and, for out-of-bounds failures, the image size that was
// violated.
type ValidationError struct {
	Kind      Kind
	Message   string
	Box       *Box
	ImageSize *Size
}

func (e *ValidationError) Error() string {
	if e.Box != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Box)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsInvalid reports whether err is a ValidationError of KindInvalid.
func IsInvalid(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) && verr.Kind == KindInvalid
}

// IsOutOfBounds reports whether err is a ValidationError of KindOutOfBounds.
func IsOutOfBounds(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) && verr.Kind == KindOutOfBounds
}

func errInvalid(b Box, format string, args ...interface{}) error {
	box := b
	return &ValidationError{
		Kind:    KindInvalid,
		Message: fmt.Sprintf(format, args...),
		Box:     &box,
	}
}

func errOutOfBounds(b Box, size Size, format string, args ...interface{}) error {
	box := b
	return &ValidationError{
		Kind:      KindOutOfBounds,
		Message:   fmt.Sprintf(format, args...),
		Box:       &box,
		ImageSize: &size,
	}
}
