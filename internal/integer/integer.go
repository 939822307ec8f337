package integer

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// Integer holds one ASN.1 INTEGER field value constrained by a Definition.
//
// An Integer starts uninitialized unless built with a value. SetValue is
// the only mutation path for the value; constructors and Decode go
// through the same bounds check. Integer is not safe for concurrent
// mutation.
type Integer struct {
	def   *Definition
	name  string
	value *big.Int // nil until set
}

// New creates an uninitialized Integer. A nil definition is unconstrained.
func New(def *Definition) *Integer {
	return &Integer{def: def}
}

// NewNamed creates an uninitialized Integer with a diagnostic name.
func NewNamed(def *Definition, name string) *Integer {
	return &Integer{def: def, name: name}
}

// NewWithValue creates an Integer holding v. It fails with a
// *ConstraintError if v is outside the definition's bounds.
func NewWithValue(def *Definition, v *big.Int) (*Integer, error) {
	i := New(def)
	if err := i.SetValue(v); err != nil {
		return nil, err
	}
	return i, nil
}

// NewWithInt64 is NewWithValue for int64 values.
func NewWithInt64(def *Definition, v int64) (*Integer, error) {
	return NewWithValue(def, big.NewInt(v))
}

// NewNamedWithValue creates a named Integer holding v.
func NewNamedWithValue(def *Definition, name string, v *big.Int) (*Integer, error) {
	i := NewNamed(def, name)
	if err := i.SetValue(v); err != nil {
		return nil, err
	}
	return i, nil
}

// Definition returns the field definition, possibly nil.
func (i *Integer) Definition() *Definition {
	return i.def
}

// Name returns the diagnostic name. If none was set, the definition
// name is returned.
func (i *Integer) Name() string {
	if i.name != "" {
		return i.name
	}
	return i.def.Name()
}

// SetName sets the diagnostic name.
func (i *Integer) SetName(name string) {
	i.name = name
}

// IsSet reports whether a value has been set.
func (i *Integer) IsSet() bool {
	return i.value != nil
}

// SetValue validates v against the definition and stores a copy of it.
// On failure the previous state is left unchanged.
func (i *Integer) SetValue(v *big.Int) error {
	if v == nil {
		return errors.Wrapf(ErrUninitializedValue, "%s: nil value", i.label())
	}
	if err := i.def.Check(i.Name(), v); err != nil {
		return err
	}
	i.value = new(big.Int).Set(v)
	return nil
}

// SetInt64 is SetValue for int64 values.
func (i *Integer) SetInt64(v int64) error {
	return i.SetValue(big.NewInt(v))
}

// Value returns a copy of the stored value.
func (i *Integer) Value() (*big.Int, error) {
	if i.value == nil {
		return nil, errors.Wrapf(ErrUninitializedValue, "%s", i.label())
	}
	return new(big.Int).Set(i.value), nil
}

// Int64 returns the stored value as int64. It fails with ErrOverflow if
// the value does not fit.
func (i *Integer) Int64() (int64, error) {
	if i.value == nil {
		return 0, errors.Wrapf(ErrUninitializedValue, "%s", i.label())
	}
	if !i.value.IsInt64() {
		return 0, errors.Wrapf(ErrOverflow, "%s: %s", i.label(), i.value)
	}
	return i.value.Int64(), nil
}

// Encode returns the minimal two's complement value octets. Tag and
// length framing are left to the caller.
func (i *Integer) Encode() ([]byte, error) {
	return i.AppendContents(nil)
}

// AppendContents appends the value octets to dst.
func (i *Integer) AppendContents(dst []byte) ([]byte, error) {
	if i.value == nil {
		return dst, errors.Wrapf(ErrUninitializedValue, "%s: cannot encode", i.label())
	}
	return AppendTwosComplement(dst, i.value), nil
}

// Decode parses value octets whose length was delimited by the caller,
// checks the bounds and stores the result. On any error the previous
// state is left unchanged.
func (i *Integer) Decode(contents []byte) error {
	v, err := DecodeTwosComplement(contents, i.def.Policy() == PolicyStrict)
	if err != nil {
		return errors.Wrapf(err, "%s", i.label())
	}
	if err := i.def.Check(i.Name(), v); err != nil {
		return err
	}
	i.value = v
	return nil
}

// String returns the decimal value, or "<unset>".
func (i *Integer) String() string {
	if i.value == nil {
		return "<unset>"
	}
	return i.value.String()
}

func (i *Integer) label() string {
	if name := i.Name(); name != "" {
		return name
	}
	return "INTEGER"
}
