package htmlentity

import (
	"strconv"
	"unicode/utf8"
)

// An EncodeType selects how an escaped character is rendered.
type EncodeType uint8

const (
	// Named emits the canonical named reference (&lt;), falling back to
	// lowercase hex (&#x4e16;) when no name exists for the code point.
	Named EncodeType = iota

	// Decimal always emits a decimal numeric reference (&#60;).
	Decimal

	// Hex always emits a lowercase hexadecimal numeric reference (&#x3c;).
	Hex

	// NamedOrDecimal emits the named reference when one exists, else a
	// decimal numeric reference.
	NamedOrDecimal

	// NamedOrHex emits the named reference when one exists, else a
	// hexadecimal numeric reference. Equivalent to Named; the name makes
	// the fallback base explicit.
	NamedOrHex
)

// String returns the encode type's name.
func (t EncodeType) String() string {
	switch t {
	case Named:
		return "Named"
	case Decimal:
		return "Decimal"
	case Hex:
		return "Hex"
	case NamedOrDecimal:
		return "NamedOrDecimal"
	case NamedOrHex:
		return "NamedOrHex"
	}
	return "EncodeType(?)"
}

// Encode walks data as UTF-8 and escapes every character the charset
// contains, rendering each per encodeType. Characters outside the set, and
// bytes that do not form valid UTF-8 sequences, pass through unchanged as
// literal units. Encode never fails, whatever the input.
func Encode(data []byte, encodeType EncodeType, charset CharacterSet) *CodedData {
	return EncodeFilter(data, encodeType, charset.Contains)
}

// EncodeFilter is Encode with a caller-supplied predicate in place of the
// CharacterSet policy: characters for which filter returns true are
// escaped per encodeType, the rest pass through.
func EncodeFilter(data []byte, encodeType EncodeType, filter func(rune) bool) *CodedData {
	return EncodeWith(data, func(r rune) (EncodeType, bool) {
		return encodeType, filter(r)
	})
}

// EncodeWith gives the caller per-character control: pick is consulted for
// every decoded character and returns the EncodeType to render it with,
// or false to leave it literal.
func EncodeWith(data []byte, pick func(rune) (EncodeType, bool)) *CodedData {
	d := &CodedData{}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Malformed sequence: keep the byte as-is.
			d.append(data[i:i+1], OriginLiteral)
			i++
			continue
		}
		if t, ok := pick(r); ok {
			if ref := appendReference(nil, r, t); ref != nil {
				d.append(ref, OriginEncoded)
				i += size
				continue
			}
		}
		d.append(data[i:i+size], OriginLiteral)
		i += size
	}
	return d
}

// EncodeString is a convenience for string input and output. Encoding
// valid UTF-8 always yields valid UTF-8, so no error case exists here.
func EncodeString(content string, encodeType EncodeType, charset CharacterSet) string {
	return string(Encode([]byte(content), encodeType, charset).Bytes())
}

// appendReference appends r rendered as an entity reference per t.
// It returns nil for an unknown EncodeType, which callers treat as
// "leave the character literal".
func appendReference(buf []byte, r rune, t EncodeType) []byte {
	switch t {
	case Named, NamedOrDecimal, NamedOrHex:
		if name, ok := nameByCode[r]; ok {
			buf = append(buf, '&')
			buf = append(buf, name...)
			return append(buf, ';')
		}
		if t == NamedOrDecimal {
			return appendReference(buf, r, Decimal)
		}
		return appendReference(buf, r, Hex)
	case Decimal:
		buf = append(buf, "&#"...)
		buf = strconv.AppendInt(buf, int64(r), 10)
		return append(buf, ';')
	case Hex:
		buf = append(buf, "&#x"...)
		buf = strconv.AppendInt(buf, int64(r), 16)
		return append(buf, ';')
	}
	return nil
}
