package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/asnint/internal/ber"
	"github.com/KilimcininKorOglu/asnint/internal/config"
	"github.com/KilimcininKorOglu/asnint/internal/integer"
	"github.com/KilimcininKorOglu/asnint/internal/logging"
	"github.com/KilimcininKorOglu/asnint/internal/schema"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	schemaPath string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	logger   logging.Logger
	registry *schema.Registry
	mode     ber.Mode
	lenient  bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "asnint",
		Short:         "Encode and decode constrained ASN.1 INTEGER fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to configuration file")
	flags.StringVar(&a.schemaPath, "schema", "", "Path to field schema file (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text, json (overrides config)")

	cmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newCheckCmd(a),
		newFieldsCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// setup loads configuration, the logger and the field registry.
func (a *app) setup() error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	config.ApplyEnvOverrides(cfg)

	if a.schemaPath != "" {
		cfg.Schema.Path = a.schemaPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return errors.Wrap(errs[0], "invalid configuration")
	}

	a.cfg = cfg
	switch cfg.Logging.Output {
	case "", "stderr":
		a.logger = logging.NewWithWriter(
			logging.ParseLevel(cfg.Logging.Level),
			logging.ParseFormat(cfg.Logging.Format),
			a.stderr,
		)
	default:
		a.logger = logging.New(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cfg.Logging.Output,
		})
	}

	mode, err := ber.ParseMode(cfg.Codec.Mode)
	if err != nil {
		return err
	}
	a.mode = mode
	a.lenient = cfg.Codec.Policy == integer.PolicyLenient.String()

	registry := schema.NewRegistry()
	if cfg.Schema.Builtin {
		registry = schema.LoadDefaultSchema()
	}
	if cfg.Schema.Path != "" {
		extra, err := schema.LoadSchema(cfg.Schema.Path)
		if err != nil {
			return err
		}
		if err := registry.Merge(extra); err != nil {
			return err
		}
		a.logger.Debug("schema loaded", "path", cfg.Schema.Path, "fields", extra.Len())
	}
	a.registry = registry

	a.logger.Debug("configuration loaded",
		"mode", a.mode.String(),
		"policy", cfg.Codec.Policy,
		"fields", registry.Len(),
	)
	return nil
}

// field resolves a field type by name, applying the configured policy
// and an optional tag override. A negative tag keeps the schema tag.
func (a *app) field(name string, tag int) (schema.Field, error) {
	f, err := a.registry.Get(name)
	if err != nil {
		return schema.Field{}, err
	}
	if a.lenient && f.Definition.Policy() != integer.PolicyLenient {
		def, err := f.Definition.With(integer.WithPolicy(integer.PolicyLenient))
		if err != nil {
			return schema.Field{}, err
		}
		f.Definition = def
	}
	if tag >= 0 {
		f.Tag = ber.ContextTag(tag)
	}
	return f, nil
}
