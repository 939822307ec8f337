package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/asnint/internal/integer"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		field string
		value string
	)

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check whether a value satisfies a field type's bounds",
		Example: `  asnint check --field Heading --value 28801`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.field(field, -1)
			if err != nil {
				return err
			}
			v, err := parseValue(value)
			if err != nil {
				return err
			}

			if err := f.Definition.Check("", v); err != nil {
				var cerr *integer.ConstraintError
				if errors.As(err, &cerr) {
					a.logger.Info("value rejected", "field", f.Name(), "value", v.String())
				}
				return err
			}

			fmt.Fprintf(a.stdout, "ok: %s satisfies %s\n", v, f.Definition)
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "Integer", "Field type name")
	cmd.Flags().StringVar(&value, "value", "", "Decimal or 0x-prefixed hex value (required)")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
