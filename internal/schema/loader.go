package schema

import (
	"bytes"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/asnint/internal/ber"
	"github.com/KilimcininKorOglu/asnint/internal/integer"
)

// Loader errors
var (
	ErrSchemaFileNotFound = errors.New("schema: file not found")
	ErrInvalidBound       = errors.New("schema: invalid bound")
	ErrInvalidTag         = errors.New("schema: invalid tag")
)

// document is the YAML layout of a schema file:
//
//	fields:
//	  - name: Latitude
//	    lower: -900000000
//	    upper: 900000001
//	    tag: 0          # optional, implicit [0]; untagged INTEGER when absent
//	    policy: strict  # strict | lenient
type document struct {
	Fields []fieldEntry `yaml:"fields"`
}

type fieldEntry struct {
	Name   string `yaml:"name"`
	Lower  *bound `yaml:"lower"`
	Upper  *bound `yaml:"upper"`
	Tag    *int   `yaml:"tag"`
	Policy string `yaml:"policy"`
}

// bound is an arbitrary precision bound. MIN and MAX leave it open.
type bound struct {
	v *big.Int
}

// UnmarshalYAML parses the scalar text so bounds beyond int64 survive.
func (b *bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrInvalidBound, "line %d: expected a number", node.Line)
	}
	text := strings.TrimSpace(node.Value)
	switch strings.ToUpper(text) {
	case "MIN", "MAX":
		b.v = nil
		return nil
	}
	v, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return errors.Wrapf(ErrInvalidBound, "line %d: %q", node.Line, text)
	}
	b.v = v
	return nil
}

// LoadSchema loads field definitions from a YAML file.
func LoadSchema(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSchemaFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "schema: read %s", path)
	}
	return ParseSchema(data)
}

// ParseSchema parses field definitions from YAML data. Unknown keys are
// rejected.
func ParseSchema(data []byte) (*Registry, error) {
	return decodeSchema(bytes.NewReader(data))
}

func decodeSchema(r io.Reader) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "schema: parse")
	}

	reg := NewRegistry()
	for i, entry := range doc.Fields {
		f, err := entry.field()
		if err != nil {
			return nil, errors.Wrapf(err, "schema: field %d", i)
		}
		if err := reg.Register(f); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (e fieldEntry) field() (Field, error) {
	if e.Name == "" {
		return Field{}, ErrEmptyFieldName
	}

	policy, err := integer.ParsePolicy(e.Policy)
	if err != nil {
		return Field{}, err
	}

	opts := []integer.Option{integer.WithPolicy(policy)}
	if e.Lower != nil && e.Lower.v != nil {
		opts = append(opts, integer.WithLowerBound(e.Lower.v))
	}
	if e.Upper != nil && e.Upper.v != nil {
		opts = append(opts, integer.WithUpperBound(e.Upper.v))
	}
	def, err := integer.NewDefinition(e.Name, opts...)
	if err != nil {
		return Field{}, err
	}

	tag := ber.UniversalInteger
	if e.Tag != nil {
		if *e.Tag < 0 {
			return Field{}, errors.Wrapf(ErrInvalidTag, "%s: %d", e.Name, *e.Tag)
		}
		tag = ber.ContextTag(*e.Tag)
	}

	return Field{Definition: def, Tag: tag}, nil
}
