// Package config provides configuration parsing for the asnint tools.
package config

// Config holds the complete tool configuration.
type Config struct {
	Logging LogConfig    `yaml:"logging"`
	Codec   CodecConfig  `yaml:"codec"`
	Schema  SchemaConfig `yaml:"schema"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// CodecConfig selects the framing rules and contents policy.
type CodecConfig struct {
	// Mode is "der" or "ber".
	Mode string `yaml:"mode"`
	// Policy is "strict" or "lenient". Lenient relaxes every field;
	// strict keeps each field's own policy.
	Policy string `yaml:"policy"`
}

// SchemaConfig locates additional field definitions.
type SchemaConfig struct {
	// Path to a YAML schema file merged over the built-in fields.
	Path string `yaml:"path"`
	// Builtin controls whether the built-in fields are registered.
	Builtin bool `yaml:"builtin"`
}
