// Package integer implements a range-constrained ASN.1 INTEGER value and
// its contents-octet codec as specified in ITU-T X.690 section 8.3.
//
// A Definition describes one schema field type (name, optional inclusive
// bounds, decode policy). An Integer holds a value of that type:
//
//	lat := integer.MustDefinition("Latitude", integer.WithRange(-900000000, 900000001))
//	v := integer.New(lat)
//	if err := v.SetInt64(374210000); err != nil {
//	    // errors.Is(err, integer.ErrConstraintViolation)
//	}
//	contents, err := v.Encode()
//
// Encode and Decode deal only in contents octets: the minimal two's
// complement big-endian representation of the value. Tag and length
// framing belong to package ber.
//
// # Canonical form
//
// A contents encoding is minimal when its first nine bits are neither all
// zero nor all one. Under PolicyStrict (the default) Decode rejects
// non-minimal input with ErrMalformedEncoding; under PolicyLenient it is
// accepted and Encode produces the minimal form afterwards. Empty input
// is malformed under both policies.
package integer

import "math/big"

// Codec is the value-level contract consumed by framing code.
type Codec interface {
	SetValue(v *big.Int) error
	Value() (*big.Int, error)
	Encode() ([]byte, error)
	Decode(contents []byte) error
}

var _ Codec = (*Integer)(nil)
