package integer

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
)

// Policy selects how non-minimal value octets are handled on decode.
type Policy int

const (
	// PolicyStrict rejects non-minimal encodings, as DER requires.
	PolicyStrict Policy = iota
	// PolicyLenient accepts non-minimal encodings and normalizes them.
	PolicyLenient
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return PolicyStrict, errors.Newf("integer: unknown policy %q", s)
	}
}

// Definition describes one named INTEGER field type: its diagnostic name,
// optional inclusive bounds and decode policy. A Definition is immutable
// once built and may be shared by any number of Integer values.
type Definition struct {
	name   string
	lower  *big.Int
	upper  *big.Int
	policy Policy
}

// Option configures a Definition.
type Option func(*Definition)

// WithLowerBound sets the inclusive lower bound.
func WithLowerBound(lower *big.Int) Option {
	return func(d *Definition) {
		d.lower = cloneInt(lower)
	}
}

// WithUpperBound sets the inclusive upper bound.
func WithUpperBound(upper *big.Int) Option {
	return func(d *Definition) {
		d.upper = cloneInt(upper)
	}
}

// WithRange sets both bounds from int64 values.
func WithRange(lower, upper int64) Option {
	return func(d *Definition) {
		d.lower = big.NewInt(lower)
		d.upper = big.NewInt(upper)
	}
}

// WithPolicy sets the decode policy.
func WithPolicy(p Policy) Option {
	return func(d *Definition) {
		d.policy = p
	}
}

// NewDefinition builds a field definition. It returns ErrInvalidBounds
// when both bounds are set and lower > upper.
func NewDefinition(name string, opts ...Option) (*Definition, error) {
	d := &Definition{name: name}
	for _, opt := range opts {
		opt(d)
	}
	if d.lower != nil && d.upper != nil && d.lower.Cmp(d.upper) > 0 {
		return nil, errors.Wrapf(ErrInvalidBounds, "%s (%s..%s)", name, d.lower, d.upper)
	}
	return d, nil
}

// MustDefinition is like NewDefinition but panics on error.
// It is intended for package-level field tables.
func MustDefinition(name string, opts ...Option) *Definition {
	d, err := NewDefinition(name, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// With returns a copy of d with opts applied on top of its settings.
func (d *Definition) With(opts ...Option) (*Definition, error) {
	base := []Option{
		WithLowerBound(d.Lower()),
		WithUpperBound(d.Upper()),
		WithPolicy(d.Policy()),
	}
	return NewDefinition(d.Name(), append(base, opts...)...)
}

// Name returns the field type name.
func (d *Definition) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Lower returns a copy of the lower bound, or nil if unbounded below.
func (d *Definition) Lower() *big.Int {
	if d == nil {
		return nil
	}
	return cloneInt(d.lower)
}

// Upper returns a copy of the upper bound, or nil if unbounded above.
func (d *Definition) Upper() *big.Int {
	if d == nil {
		return nil
	}
	return cloneInt(d.upper)
}

// Policy returns the decode policy.
func (d *Definition) Policy() Policy {
	if d == nil {
		return PolicyStrict
	}
	return d.policy
}

// Constrained reports whether at least one bound is set.
func (d *Definition) Constrained() bool {
	return d != nil && (d.lower != nil || d.upper != nil)
}

// Contains reports whether v satisfies the bounds.
func (d *Definition) Contains(v *big.Int) bool {
	if d == nil {
		return true
	}
	if d.lower != nil && v.Cmp(d.lower) < 0 {
		return false
	}
	if d.upper != nil && v.Cmp(d.upper) > 0 {
		return false
	}
	return true
}

// Check returns a *ConstraintError if v is out of bounds. name labels
// the error; the definition name is used when it is empty.
func (d *Definition) Check(name string, v *big.Int) error {
	if d.Contains(v) {
		return nil
	}
	if name == "" {
		name = d.Name()
	}
	return &ConstraintError{
		Name:  name,
		Value: cloneInt(v),
		Lower: d.Lower(),
		Upper: d.Upper(),
	}
}

// String renders the definition in ASN.1 notation, e.g.
// "Latitude ::= INTEGER (-900000000..900000001)".
func (d *Definition) String() string {
	name := d.Name()
	if name == "" {
		name = "INTEGER"
	}
	if !d.Constrained() {
		return name + " ::= INTEGER"
	}
	return fmt.Sprintf("%s ::= INTEGER (%s..%s)", name,
		boundString(d.lower, "MIN"), boundString(d.upper, "MAX"))
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
