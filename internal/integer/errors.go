package integer

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
)

// Codec errors
var (
	// ErrConstraintViolation is returned when a proposed or decoded value
	// falls outside the bounds of its definition.
	ErrConstraintViolation = errors.New("integer: constraint violation")

	// ErrUninitializedValue is returned when a value is required but none
	// has been set.
	ErrUninitializedValue = errors.New("integer: value not initialized")

	// ErrMalformedEncoding is returned when value octets are empty or not
	// in canonical form under a strict policy.
	ErrMalformedEncoding = errors.New("integer: malformed encoding")

	// ErrInvalidBounds is returned when a definition has lower > upper.
	ErrInvalidBounds = errors.New("integer: lower bound exceeds upper bound")

	// ErrOverflow is returned when a value does not fit the requested Go type.
	ErrOverflow = errors.New("integer: value overflows int64")
)

// ConstraintError describes a rejected value.
type ConstraintError struct {
	Name  string   // Field name, may be empty
	Value *big.Int // Rejected value
	Lower *big.Int // nil means MIN
	Upper *big.Int // nil means MAX
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	name := e.Name
	if name == "" {
		name = "INTEGER"
	}
	return fmt.Sprintf("integer: %s value %s outside range (%s..%s)",
		name, e.Value, boundString(e.Lower, "MIN"), boundString(e.Upper, "MAX"))
}

// Is allows ConstraintError to match ErrConstraintViolation with errors.Is.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func boundString(b *big.Int, open string) string {
	if b == nil {
		return open
	}
	return b.String()
}

// malformed wraps ErrMalformedEncoding with a description of the input.
func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedEncoding, format, args...)
}
