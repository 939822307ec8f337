// Package ber implements the tag and length framing of ASN.1 BER and DER
// (ITU-T X.690) for primitive INTEGER fields.
//
// Value octets are produced and consumed by package integer; this package
// wraps them in identifier and length octets.
//
// # Tag Classes
//
//   - Universal (0x00): INTEGER is [UNIVERSAL 2]
//   - Application (0x40)
//   - Context-specific (0x80): implicit field tags such as [0]
//   - Private (0xC0)
//
// # Encoding
//
//	lat := integer.New(latitude)
//	lat.SetInt64(374210000)
//
//	encoder := ber.NewBEREncoder(16)
//	if err := encoder.WriteField(ber.UniversalInteger, lat); err != nil {
//	    // integer.ErrUninitializedValue
//	}
//	data := encoder.Bytes() // 02 04 16 4d fd d0
//
// The encoder always writes the shortest definite length, so its output
// is DER.
//
// # Decoding
//
//	decoder := ber.NewDERDecoder(data)
//	out := integer.New(latitude)
//	if err := decoder.ReadField(ber.UniversalInteger, out); err != nil {
//	    // ErrTagMismatch, ErrNonMinimalLength, integer.ErrConstraintViolation ...
//	}
//
// A BER decoder accepts long-form lengths that could have been written in
// fewer octets and non-minimal INTEGER contents in ReadInteger. A DER
// decoder rejects both. Indefinite lengths are rejected in either mode.
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
package ber
