package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/asnint/internal/ber"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		opts encodeOptions
		data string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode hex octets as a value of a field type",
		Example: `  asnint decode --field Latitude --hex 164dfdd0
  asnint decode --field Speed --hex "83 02 1f 40" --tlv --tag 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.field(opts.field, opts.tag)
			if err != nil {
				return err
			}

			octets, err := parseHex(data)
			if err != nil {
				return err
			}

			i := f.New("")
			if opts.tlv {
				dec := ber.NewBERDecoder(octets)
				dec.SetMode(a.mode)
				if err := dec.ReadField(f.Tag, i); err != nil {
					return err
				}
				if dec.Remaining() > 0 {
					return errors.Newf("%d trailing octets after %s", dec.Remaining(), f.Name())
				}
			} else if err := i.Decode(octets); err != nil {
				return err
			}

			a.logger.Debug("decoded field",
				"field", f.Name(),
				"value", i.String(),
				"tlv", opts.tlv,
				"mode", a.mode.String(),
			)
			fmt.Fprintln(a.stdout, i.String())
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&data, "hex", "", "Hex octets to decode (required)")
	_ = cmd.MarkFlagRequired("hex")
	return cmd
}
