package ber

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Tag class constants (bits 7-8 of the tag byte)
const (
	ClassUniversal       = 0x00 // 00xxxxxx
	ClassApplication     = 0x40 // 01xxxxxx
	ClassContextSpecific = 0x80 // 10xxxxxx
	ClassPrivate         = 0xC0 // 11xxxxxx
)

// Constructed flag (bit 6 of the tag byte)
const (
	TypePrimitive   = 0x00 // xx0xxxxx
	TypeConstructed = 0x20 // xx1xxxxx
)

// TagInteger is the universal tag number of INTEGER.
const TagInteger = 0x02

// Length encoding constants
const (
	// LengthLongFormBit indicates long form length encoding (bit 8 set)
	LengthLongFormBit = 0x80
	// MaxShortFormLength is the maximum length encodable in short form (0-127)
	MaxShortFormLength = 127
)

// Mode selects how strictly the decoder treats length octets.
type Mode int

const (
	// ModeBER accepts any definite length encoding.
	ModeBER Mode = iota
	// ModeDER additionally requires the shortest length encoding.
	ModeDER
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBER:
		return "ber"
	case ModeDER:
		return "der"
	default:
		return "unknown"
	}
}

// ParseMode parses "ber" or "der". Anything else is an error.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ber":
		return ModeBER, nil
	case "", "der":
		return ModeDER, nil
	default:
		return ModeDER, errors.Newf("ber: unknown mode %q", s)
	}
}

// Tag identifies a primitive field by class and number.
type Tag struct {
	Class  int
	Number int
}

// UniversalInteger is the tag of an untagged INTEGER.
var UniversalInteger = Tag{Class: ClassUniversal, Number: TagInteger}

// ContextTag returns the implicit context-specific tag [n].
func ContextTag(n int) Tag {
	return Tag{Class: ClassContextSpecific, Number: n}
}

// String renders the tag in ASN.1 notation.
func (t Tag) String() string {
	switch t.Class {
	case ClassUniversal:
		return fmt.Sprintf("[UNIVERSAL %d]", t.Number)
	case ClassApplication:
		return fmt.Sprintf("[APPLICATION %d]", t.Number)
	case ClassPrivate:
		return fmt.Sprintf("[PRIVATE %d]", t.Number)
	default:
		return fmt.Sprintf("[%d]", t.Number)
	}
}
