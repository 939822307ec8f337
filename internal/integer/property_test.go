package integer

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIntegerProperties(t *testing.T) {
	lat := MustDefinition("Latitude", WithRange(-900000000, 900000001))
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(v)) == v", prop.ForAll(
		func(v int64) bool {
			src, err := NewWithInt64(nil, v)
			if err != nil {
				return false
			}
			contents, err := src.Encode()
			if err != nil {
				return false
			}
			dst := New(nil)
			if err := dst.Decode(contents); err != nil {
				return false
			}
			got, err := dst.Int64()
			return err == nil && got == v
		},
		gen.Int64(),
	))

	properties.Property("encoding is minimal", prop.ForAll(
		func(v int64) bool {
			return IsMinimal(EncodeTwosComplement(big.NewInt(v)))
		},
		gen.Int64(),
	))

	properties.Property("in-range values round trip through a constrained field", prop.ForAll(
		func(v int64) bool {
			src, err := NewWithInt64(lat, v)
			if err != nil {
				return false
			}
			contents, _ := src.Encode()
			dst := New(lat)
			return dst.Decode(contents) == nil && dst.String() == src.String()
		},
		gen.Int64Range(-900000000, 900000001),
	))

	properties.Property("out-of-range set leaves the value unchanged", prop.ForAll(
		func(v int64) bool {
			i, err := NewWithInt64(lat, 0)
			if err != nil {
				return false
			}
			if err := i.SetInt64(v); err == nil {
				return false
			}
			return i.String() == "0"
		},
		gen.OneGenOf(
			gen.Int64Range(900000002, 1<<62),
			gen.Int64Range(-(1 << 62), -900000001),
		),
	))

	properties.Property("lenient decode of padded octets equals strict decode", prop.ForAll(
		func(v int64) bool {
			contents := EncodeTwosComplement(big.NewInt(v))
			pad := byte(0x00)
			if v < 0 {
				pad = 0xFF
			}
			padded := append([]byte{pad}, contents...)
			got, err := DecodeTwosComplement(padded, false)
			if err != nil || got.Int64() != v {
				return false
			}
			_, err = DecodeTwosComplement(padded, true)
			return err != nil
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
