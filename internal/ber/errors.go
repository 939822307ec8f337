package ber

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Decoder errors
var (
	// ErrUnexpectedEOF is returned when the decoder encounters truncated data.
	ErrUnexpectedEOF = errors.New("ber: unexpected end of data")

	// ErrInvalidLength is returned when a length value is malformed.
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrIndefiniteLength is returned when indefinite length encoding is
	// encountered. Primitive INTEGER fields never use it.
	ErrIndefiniteLength = errors.New("ber: indefinite length not supported")

	// ErrNonMinimalLength is returned in DER mode when a length is not
	// encoded in the fewest octets.
	ErrNonMinimalLength = errors.New("ber: non-minimal length encoding")

	// ErrInvalidInteger is returned when an integer value is malformed.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrTagMismatch is returned when the expected tag does not match the actual tag.
	ErrTagMismatch = errors.New("ber: tag mismatch")
)

// Encoder errors
var (
	ErrInvalidTagClass  = errors.New("ber: invalid tag class")
	ErrInvalidTagNumber = errors.New("ber: invalid tag number")
	ErrNegativeLength   = errors.New("ber: negative length not allowed")
)

// DecodeError provides detailed information about a decoding failure.
type DecodeError struct {
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("ber: decode error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError with the given parameters.
func NewDecodeError(offset int, message string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

// TagMismatchError reports a field whose identifier octets differ from
// the expected tag.
type TagMismatchError struct {
	Offset            int
	Expected          Tag
	Actual            Tag
	ActualConstructed int
}

// Error implements the error interface.
func (e *TagMismatchError) Error() string {
	kind := "primitive"
	if e.ActualConstructed == TypeConstructed {
		kind = "constructed"
	}
	return fmt.Sprintf("ber: tag mismatch at offset %d: expected %s, got %s %s",
		e.Offset, e.Expected, kind, e.Actual)
}

// Is allows TagMismatchError to match ErrTagMismatch with errors.Is.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}
