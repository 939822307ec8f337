package config

import (
	"fmt"

	"github.com/KilimcininKorOglu/asnint/internal/ber"
	"github.com/KilimcininKorOglu/asnint/internal/integer"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error
	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateCodecConfig(&config.Codec)...)
	return errs
}

func validateLogConfig(config *LogConfig) []error {
	var errs []error

	switch config.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q, must be one of: debug, info, warn, error", config.Level),
		})
	}

	switch config.Format {
	case "", "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q, must be one of: text, json", config.Format),
		})
	}

	return errs
}

func validateCodecConfig(config *CodecConfig) []error {
	var errs []error

	if _, err := ber.ParseMode(config.Mode); err != nil {
		errs = append(errs, ValidationError{
			Field:   "codec.mode",
			Message: fmt.Sprintf("invalid mode %q, must be one of: der, ber", config.Mode),
		})
	}

	if _, err := integer.ParsePolicy(config.Policy); err != nil {
		errs = append(errs, ValidationError{
			Field:   "codec.policy",
			Message: fmt.Sprintf("invalid policy %q, must be one of: strict, lenient", config.Policy),
		})
	}

	return errs
}
