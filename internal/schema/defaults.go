package schema

import (
	_ "embed"
)

// defaultSchema holds the built-in field types: a plain INTEGER and a
// selection of SAE J2735 DSRC INTEGER types.
//
//go:embed defaults.yaml
var defaultSchema []byte

// LoadDefaultSchema returns a registry with the built-in field types.
func LoadDefaultSchema() *Registry {
	reg, err := ParseSchema(defaultSchema)
	if err != nil {
		panic("schema: invalid built-in schema: " + err.Error())
	}
	return reg
}
