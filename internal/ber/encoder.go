package ber

import (
	"math/big"

	"github.com/KilimcininKorOglu/asnint/internal/integer"
)

// ContentsEncoder produces the contents octets of a primitive value.
// *integer.Integer implements it.
type ContentsEncoder interface {
	AppendContents(dst []byte) ([]byte, error)
}

// BEREncoder frames values with BER tag and length octets. Lengths are
// always written in their shortest definite form, so the output is also
// valid DER.
type BEREncoder struct {
	buf []byte
}

// NewBEREncoder creates a new BER encoder with an optional initial capacity.
func NewBEREncoder(capacity int) *BEREncoder {
	if capacity <= 0 {
		capacity = 64
	}
	return &BEREncoder{
		buf: make([]byte, 0, capacity),
	}
}

// Bytes returns the encoded bytes.
func (e *BEREncoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer for reuse.
func (e *BEREncoder) Reset() {
	e.buf = e.buf[:0]
}

// Len returns the current length of encoded data.
func (e *BEREncoder) Len() int {
	return len(e.buf)
}

// WriteTag writes a BER tag byte(s) to the buffer.
// class: ClassUniversal, ClassApplication, ClassContextSpecific, or ClassPrivate
// constructed: TypePrimitive or TypeConstructed
// number: tag number (0-30 for short form, >30 for long form)
func (e *BEREncoder) WriteTag(class, constructed, number int) error {
	if class != ClassUniversal && class != ClassApplication &&
		class != ClassContextSpecific && class != ClassPrivate {
		return ErrInvalidTagClass
	}
	if number < 0 {
		return ErrInvalidTagNumber
	}

	if number <= 30 {
		e.buf = append(e.buf, byte(class)|byte(constructed)|byte(number))
		return nil
	}

	// Long form: low five bits set, number follows in base-128
	e.buf = append(e.buf, byte(class)|byte(constructed)|0x1F)
	e.writeBase128(number)
	return nil
}

// writeBase128 encodes an integer in base-128 format (high bit indicates continuation)
func (e *BEREncoder) writeBase128(value int) {
	n := 1
	for v := value >> 7; v > 0; v >>= 7 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b := byte(value>>(uint(i)*7)) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		e.buf = append(e.buf, b)
	}
}

// WriteLength writes a definite length in its shortest form.
func (e *BEREncoder) WriteLength(length int) error {
	if length < 0 {
		return ErrNegativeLength
	}

	if length <= MaxShortFormLength {
		e.buf = append(e.buf, byte(length))
		return nil
	}

	numBytes := 0
	for temp := length; temp > 0; temp >>= 8 {
		numBytes++
	}

	e.buf = append(e.buf, byte(LengthLongFormBit|numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		e.buf = append(e.buf, byte(length>>(uint(i)*8)))
	}
	return nil
}

// WriteInteger writes an untagged INTEGER.
func (e *BEREncoder) WriteInteger(v int64) error {
	return e.writePrimitive(UniversalInteger, integer.EncodeTwosComplement(big.NewInt(v)))
}

// WriteField writes the contents produced by c under the given tag.
// Nothing is written if c fails.
func (e *BEREncoder) WriteField(tag Tag, c ContentsEncoder) error {
	contents, err := c.AppendContents(nil)
	if err != nil {
		return err
	}
	return e.writePrimitive(tag, contents)
}

func (e *BEREncoder) writePrimitive(tag Tag, contents []byte) error {
	mark := len(e.buf)
	if err := e.WriteTag(tag.Class, TypePrimitive, tag.Number); err != nil {
		return err
	}
	if err := e.WriteLength(len(contents)); err != nil {
		e.buf = e.buf[:mark]
		return err
	}
	e.buf = append(e.buf, contents...)
	return nil
}

// WriteRaw writes raw bytes directly to the buffer.
func (e *BEREncoder) WriteRaw(data []byte) {
	e.buf = append(e.buf, data...)
}
