package schema

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/KilimcininKorOglu/asnint/internal/ber"
	"github.com/KilimcininKorOglu/asnint/internal/integer"
)

// Registry errors
var (
	ErrDuplicateField = errors.New("schema: duplicate field")
	ErrUnknownField   = errors.New("schema: unknown field")
	ErrEmptyFieldName = errors.New("schema: field name is required")
)

// Field is a named INTEGER field type together with the tag it is
// framed with.
type Field struct {
	Definition *integer.Definition
	Tag        ber.Tag
}

// Name returns the field type name.
func (f Field) Name() string {
	return f.Definition.Name()
}

// New returns an uninitialized value of this field type. An empty name
// leaves the diagnostic name to the definition.
func (f Field) New(name string) *integer.Integer {
	return integer.NewNamed(f.Definition, name)
}

// Registry holds field types by name.
type Registry struct {
	fields map[string]Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]Field)}
}

// Register adds a field. Names must be non-empty and unique.
func (r *Registry) Register(f Field) error {
	name := f.Name()
	if name == "" {
		return ErrEmptyFieldName
	}
	if _, ok := r.fields[name]; ok {
		return errors.Wrapf(ErrDuplicateField, "%q", name)
	}
	r.fields[name] = f
	return nil
}

// Lookup returns the field with the given name.
func (r *Registry) Lookup(name string) (Field, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Get is like Lookup but returns ErrUnknownField when name is missing.
func (r *Registry) Get(name string) (Field, error) {
	f, ok := r.fields[name]
	if !ok {
		return Field{}, errors.Wrapf(ErrUnknownField, "%q", name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	return len(r.fields)
}

// Merge registers every field of other into r. It stops at the first
// duplicate.
func (r *Registry) Merge(other *Registry) error {
	for _, name := range other.Names() {
		if err := r.Register(other.fields[name]); err != nil {
			return err
		}
	}
	return nil
}
