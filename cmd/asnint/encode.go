package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/asnint/internal/ber"
)

// encodeOptions holds flags shared by encode and decode.
type encodeOptions struct {
	field string
	tlv   bool
	tag   int
}

func (o *encodeOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.field, "field", "Integer", "Field type name")
	cmd.Flags().BoolVar(&o.tlv, "tlv", false, "Include tag and length octets")
	cmd.Flags().IntVar(&o.tag, "tag", -1, "Implicit context-specific tag number (with --tlv)")
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		opts  encodeOptions
		value string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a value of a field type as hex octets",
		Example: `  asnint encode --field Latitude --value 374210000
  asnint encode --field Speed --value 0x1f40 --tlv --tag 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.field(opts.field, opts.tag)
			if err != nil {
				return err
			}

			v, err := parseValue(value)
			if err != nil {
				return err
			}
			i := f.New("")
			if err := i.SetValue(v); err != nil {
				return err
			}

			var out []byte
			if opts.tlv {
				enc := ber.NewBEREncoder(16)
				if err := enc.WriteField(f.Tag, i); err != nil {
					return err
				}
				out = enc.Bytes()
			} else {
				out, err = i.Encode()
				if err != nil {
					return err
				}
			}

			a.logger.Debug("encoded field",
				"field", f.Name(),
				"value", i.String(),
				"tlv", opts.tlv,
				"octets", len(out),
			)
			fmt.Fprintln(a.stdout, hex.EncodeToString(out))
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&value, "value", "", "Decimal or 0x-prefixed hex value (required)")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// parseValue parses a decimal, 0x hex, 0o octal or 0b binary integer.
func parseValue(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, errors.Newf("invalid integer value %q", s)
	}
	return v, nil
}

// parseHex decodes hex octets, ignoring whitespace and colons.
func parseHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', ':':
			return -1
		}
		return r
	}, s)
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}
