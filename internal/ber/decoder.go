package ber

import (
	"github.com/KilimcininKorOglu/asnint/internal/integer"
)

// ContentsDecoder consumes the contents octets of a primitive value whose
// length has already been delimited. *integer.Integer implements it.
type ContentsDecoder interface {
	Decode(contents []byte) error
}

// BERDecoder reads tag/length framed values.
type BERDecoder struct {
	data   []byte
	offset int
	mode   Mode
}

// NewBERDecoder creates a new BER decoder for the given data.
func NewBERDecoder(data []byte) *BERDecoder {
	return &BERDecoder{
		data: data,
		mode: ModeBER,
	}
}

// NewDERDecoder creates a decoder that enforces DER length rules and
// minimal INTEGER contents.
func NewDERDecoder(data []byte) *BERDecoder {
	return &BERDecoder{
		data: data,
		mode: ModeDER,
	}
}

// Mode returns the decoding mode.
func (d *BERDecoder) Mode() Mode {
	return d.mode
}

// SetMode changes the decoding mode.
func (d *BERDecoder) SetMode(m Mode) {
	d.mode = m
}

// Offset returns the current read position in the data.
func (d *BERDecoder) Offset() int {
	return d.offset
}

// Remaining returns the number of bytes remaining to be read.
func (d *BERDecoder) Remaining() int {
	return len(d.data) - d.offset
}

// Reset resets the decoder to the beginning of the data.
func (d *BERDecoder) Reset() {
	d.offset = 0
}

// ReadTag reads a BER tag from the current position.
// Returns the tag class, constructed flag, and tag number.
func (d *BERDecoder) ReadTag() (class, constructed, number int, err error) {
	startOffset := d.offset

	if d.offset >= len(d.data) {
		return 0, 0, 0, NewDecodeError(startOffset, "cannot read tag", ErrUnexpectedEOF)
	}

	firstByte := d.data[d.offset]
	d.offset++

	class = int(firstByte & 0xC0)
	constructed = int(firstByte & 0x20)
	number = int(firstByte & 0x1F)

	if number == 0x1F {
		number, err = d.readBase128()
		if err != nil {
			return 0, 0, 0, NewDecodeError(startOffset, "cannot read long form tag number", err)
		}
	}

	return class, constructed, number, nil
}

// readBase128 reads a base-128 encoded integer (used for long form tags).
func (d *BERDecoder) readBase128() (int, error) {
	result := 0
	for {
		if d.offset >= len(d.data) {
			return 0, ErrUnexpectedEOF
		}

		b := d.data[d.offset]
		d.offset++

		if result > (1 << 24) {
			return 0, NewDecodeError(d.offset-1, "tag number overflow", nil)
		}

		result = (result << 7) | int(b&0x7F)

		if b&0x80 == 0 {
			break
		}
	}
	return result, nil
}

// ReadLength reads a definite length. In DER mode the long form must be
// used only for lengths above 127 and without leading zero octets.
func (d *BERDecoder) ReadLength() (int, error) {
	startOffset := d.offset

	if d.offset >= len(d.data) {
		return 0, NewDecodeError(startOffset, "cannot read length", ErrUnexpectedEOF)
	}

	firstByte := d.data[d.offset]
	d.offset++

	if firstByte&LengthLongFormBit == 0 {
		return int(firstByte), nil
	}

	numBytes := int(firstByte & 0x7F)
	if numBytes == 0 {
		return 0, NewDecodeError(startOffset, "indefinite length encoding", ErrIndefiniteLength)
	}
	if numBytes == 0x7F {
		return 0, NewDecodeError(startOffset, "reserved length octet", ErrInvalidLength)
	}
	if d.offset+numBytes > len(d.data) {
		return 0, NewDecodeError(startOffset, "truncated length encoding", ErrUnexpectedEOF)
	}
	if d.mode == ModeDER && d.data[d.offset] == 0 {
		return 0, NewDecodeError(startOffset, "leading zero in length", ErrNonMinimalLength)
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		if length > (1 << 24) {
			return 0, NewDecodeError(startOffset, "length value overflow", ErrInvalidLength)
		}
		length = (length << 8) | int(d.data[d.offset])
		d.offset++
	}

	if d.mode == ModeDER && length <= MaxShortFormLength {
		return 0, NewDecodeError(startOffset, "long form for short length", ErrNonMinimalLength)
	}

	return length, nil
}

// ReadInteger reads an untagged INTEGER that fits in an int64.
func (d *BERDecoder) ReadInteger() (int64, error) {
	startOffset := d.offset

	contents, err := d.readPrimitive(UniversalInteger)
	if err != nil {
		d.offset = startOffset
		return 0, err
	}

	if len(contents) > 8 {
		d.offset = startOffset
		return 0, NewDecodeError(startOffset, "integer too large for int64", ErrInvalidInteger)
	}

	v, err := integer.DecodeTwosComplement(contents, d.mode == ModeDER)
	if err != nil {
		d.offset = startOffset
		return 0, NewDecodeError(startOffset, err.Error(), ErrInvalidInteger)
	}
	return v.Int64(), nil
}

// ReadField reads a primitive value with the given tag and hands its
// contents to c. The decoder only advances if c accepts the contents.
func (d *BERDecoder) ReadField(tag Tag, c ContentsDecoder) error {
	startOffset := d.offset

	contents, err := d.readPrimitive(tag)
	if err != nil {
		d.offset = startOffset
		return err
	}

	if err := c.Decode(contents); err != nil {
		d.offset = startOffset
		return NewDecodeError(startOffset, tag.String()+" contents", err)
	}
	return nil
}

// readPrimitive checks the tag, reads the length and returns the
// contents, leaving the offset after them.
func (d *BERDecoder) readPrimitive(tag Tag) ([]byte, error) {
	startOffset := d.offset

	class, constructed, number, err := d.ReadTag()
	if err != nil {
		return nil, err
	}

	if class != tag.Class || constructed != TypePrimitive || number != tag.Number {
		return nil, &TagMismatchError{
			Offset:            startOffset,
			Expected:          tag,
			Actual:            Tag{Class: class, Number: number},
			ActualConstructed: constructed,
		}
	}

	length, err := d.ReadLength()
	if err != nil {
		return nil, err
	}

	if d.offset+length > len(d.data) {
		return nil, NewDecodeError(d.offset, "truncated value", ErrUnexpectedEOF)
	}

	contents := d.data[d.offset : d.offset+length]
	d.offset += length
	return contents, nil
}

// PeekTag reads a tag without advancing the offset.
func (d *BERDecoder) PeekTag() (class, constructed, number int, err error) {
	savedOffset := d.offset
	class, constructed, number, err = d.ReadTag()
	d.offset = savedOffset
	return
}

// Skip skips the current TLV (Tag-Length-Value) element.
func (d *BERDecoder) Skip() error {
	startOffset := d.offset

	if _, _, _, err := d.ReadTag(); err != nil {
		d.offset = startOffset
		return err
	}

	length, err := d.ReadLength()
	if err != nil {
		d.offset = startOffset
		return err
	}

	if d.offset+length > len(d.data) {
		d.offset = startOffset
		return NewDecodeError(startOffset, "truncated value", ErrUnexpectedEOF)
	}

	d.offset += length
	return nil
}
