// Package config provides configuration parsing for the asnint tools.
//
// Configuration is YAML:
//
//	logging:
//	  level: info          # debug, info, warn, error
//	  format: json         # text, json
//	  output: stderr       # stdout, stderr or a file path
//	codec:
//	  mode: der            # der, ber
//	  policy: strict       # strict, lenient
//	schema:
//	  path: /etc/asnint/fields.yaml
//	  builtin: true
//
// Values may reference the environment as ${VAR} or ${VAR:-default}.
// ApplyEnvOverrides applies ASNINT_LOGGING_LEVEL, ASNINT_LOGGING_FORMAT,
// ASNINT_LOGGING_OUTPUT, ASNINT_CODEC_MODE, ASNINT_CODEC_POLICY and
// ASNINT_SCHEMA_PATH afterwards.
package config
