package integer

import "math/big"

var bigOne = big.NewInt(1)

// EncodeTwosComplement returns the minimal two's complement big-endian
// octets of v, as carried in the contents of a BER/DER INTEGER.
func EncodeTwosComplement(v *big.Int) []byte {
	return AppendTwosComplement(nil, v)
}

// AppendTwosComplement appends the minimal two's complement octets of v to dst.
func AppendTwosComplement(dst []byte, v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		return append(dst, 0x00)
	case 1:
		b := v.Bytes()
		// Sign bit must stay clear for positive values
		if b[0]&0x80 != 0 {
			dst = append(dst, 0x00)
		}
		return append(dst, b...)
	}

	// For v < 0 the octets are the bitwise complement of -v-1.
	n := new(big.Int).Neg(v)
	n.Sub(n, bigOne)
	b := n.Bytes()
	for i := range b {
		b[i] ^= 0xFF
	}
	if len(b) == 0 || b[0]&0x80 == 0 {
		dst = append(dst, 0xFF)
	}
	return append(dst, b...)
}

// DecodeTwosComplement decodes two's complement big-endian octets.
// Empty input is always malformed. When strict is set, octets with a
// redundant leading octet (first nine bits all 0 or all 1) are rejected;
// otherwise they are accepted and yield the same value as the minimal form.
func DecodeTwosComplement(b []byte, strict bool) (*big.Int, error) {
	if len(b) == 0 {
		return nil, malformed("empty contents")
	}
	if strict && !IsMinimal(b) {
		return nil, malformed("non-minimal contents % x", b)
	}

	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		// Negative: subtract 2^(8*len)
		offset := new(big.Int).Lsh(bigOne, uint(len(b))*8)
		v.Sub(v, offset)
	}
	return v, nil
}

// IsMinimal reports whether b is the shortest two's complement form of
// its value. Empty input is not minimal.
func IsMinimal(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if len(b) == 1 {
		return true
	}
	if b[0] == 0x00 && b[1]&0x80 == 0 {
		return false
	}
	if b[0] == 0xFF && b[1]&0x80 != 0 {
		return false
	}
	return true
}
