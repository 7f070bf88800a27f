package htmlentity

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by CodedData.Text and CodedData.Runes
// when the accumulated output bytes are not valid UTF-8. Encoding and
// decoding themselves never fail; only these terminal conversions can, and
// the CodedData stays usable for Bytes afterwards.
var ErrInvalidEncoding = errors.New("htmlentity: result is not valid UTF-8")

// Origin records where an output unit came from.
type Origin uint8

const (
	// OriginLiteral marks bytes copied from the input unchanged.
	OriginLiteral Origin = iota
	// OriginEncoded marks an entity reference the encoder emitted in
	// place of an input character.
	OriginEncoded
	// OriginDecoded marks character bytes the decoder emitted in place
	// of an entity reference.
	OriginDecoded
)

// String returns the origin's name.
func (o Origin) String() string {
	switch o {
	case OriginLiteral:
		return "Literal"
	case OriginEncoded:
		return "Encoded"
	case OriginDecoded:
		return "Decoded"
	}
	return "Origin(?)"
}

// A Unit is one segment of codec output: its raw bytes plus the Origin tag
// saying whether the segment was passed through or replaced a reference.
type Unit struct {
	Bytes  []byte
	Origin Origin
}

// CodedData is the result of Encode or Decode: an ordered sequence of
// Units whose concatenated bytes form the complete output. It is built
// once by the call that created it and read-only afterwards.
type CodedData struct {
	units []Unit
	size  int
}

// append adds bytes with the given origin. Consecutive literal bytes merge
// into a single run. Literal bytes are copied because callers pass slices
// of the input buffer; encoded and decoded bytes are freshly built by the
// codec and stored as-is.
func (d *CodedData) append(b []byte, o Origin) {
	d.size += len(b)
	if o == OriginLiteral {
		if n := len(d.units); n > 0 && d.units[n-1].Origin == OriginLiteral {
			d.units[n-1].Bytes = append(d.units[n-1].Bytes, b...)
			return
		}
		b = append([]byte(nil), b...)
	}
	d.units = append(d.units, Unit{Bytes: b, Origin: o})
}

// Units exposes the unit sequence for callers needing provenance.
// The returned slice is shared; treat it as read-only.
func (d *CodedData) Units() []Unit {
	return d.units
}

// Len returns the total output length in bytes.
func (d *CodedData) Len() int {
	return d.size
}

// Bytes returns the concatenation of all unit bytes in order.
func (d *CodedData) Bytes() []byte {
	out := make([]byte, 0, d.size)
	for _, u := range d.units {
		out = append(out, u.Bytes...)
	}
	return out
}

// Text returns the output as a string, or ErrInvalidEncoding when the
// bytes are not valid UTF-8.
func (d *CodedData) Text() (string, error) {
	b := d.Bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}

// Runes returns the output as a sequence of Unicode scalar values, or
// ErrInvalidEncoding when the bytes are not valid UTF-8.
func (d *CodedData) Runes() ([]rune, error) {
	b := d.Bytes()
	if !utf8.Valid(b) {
		return nil, ErrInvalidEncoding
	}
	return []rune(string(b)), nil
}
