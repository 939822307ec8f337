package integer

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestContentsVectors runs the encode/decode vectors in testdata/contents.
//
//	encode            <decimal value>  -> contents octets
//	decode [policy=…] [lower=…] [upper=…]  <hex octets> -> value or error class
//	minimal           <hex octets>     -> true/false
func TestContentsVectors(t *testing.T) {
	datadriven.RunTest(t, "testdata/contents", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "encode":
			v, ok := new(big.Int).SetString(strings.TrimSpace(d.Input), 10)
			require.True(t, ok, "bad value %q", d.Input)
			return fmt.Sprintf("% x", EncodeTwosComplement(v))

		case "decode":
			def := vectorDefinition(t, d)
			i := New(def)
			if err := i.Decode(parseHex(t, d.Input)); err != nil {
				return errorClass(err)
			}
			return i.String()

		case "minimal":
			return fmt.Sprint(IsMinimal(parseHex(t, d.Input)))

		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func vectorDefinition(t *testing.T, d *datadriven.TestData) *Definition {
	var opts []Option
	if d.HasArg("policy") {
		var s string
		d.ScanArgs(t, "policy", &s)
		p, err := ParsePolicy(s)
		require.NoError(t, err)
		opts = append(opts, WithPolicy(p))
	}
	if d.HasArg("lower") {
		var lower int64
		d.ScanArgs(t, "lower", &lower)
		opts = append(opts, WithLowerBound(big.NewInt(lower)))
	}
	if d.HasArg("upper") {
		var upper int64
		d.ScanArgs(t, "upper", &upper)
		opts = append(opts, WithUpperBound(big.NewInt(upper)))
	}
	def, err := NewDefinition("vector", opts...)
	require.NoError(t, err)
	return def
}

func parseHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	require.NoError(t, err)
	return b
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrMalformedEncoding):
		return "malformed encoding"
	case errors.Is(err, ErrConstraintViolation):
		return "constraint violation"
	case errors.Is(err, ErrUninitializedValue):
		return "uninitialized value"
	default:
		return "error: " + err.Error()
	}
}
