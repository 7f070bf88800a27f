// Package htmlentity encodes and decodes HTML entity references.
//
// # Overview
//
// htmlentity converts between raw text and its entity-escaped form in
// both directions: [Encode] replaces reserved or non-ASCII characters
// with named (&lt;), decimal (&#60;) or hexadecimal (&#x3c;) references,
// and [Decode] resolves all three reference forms back to characters.
// Both return a [CodedData] holding the output as a sequence of units
// tagged with their origin, so callers can tell replaced references from
// passed-through bytes before flattening the result with
// [CodedData.Bytes], [CodedData.Text] or [CodedData.Runes].
//
// # Encoding
//
// Which characters get escaped is controlled by a [CharacterSet]:
//   - [SpecialChars] — the five reserved characters < > & " '
//   - [HTML] — only < > &
//   - [NonASCII] — everything at or above U+0080
//   - [HTMLAndNonASCII] — the union of the previous two
//   - [All] — every character that has a named entity
//   - [None] — nothing; encoding is a pass-through
//
// How an escaped character is rendered is controlled by an [EncodeType]:
// [Named] prefers the canonical entity name and falls back to lowercase
// hex when no name exists; [Decimal] and [Hex] always emit numeric
// references; [NamedOrDecimal] and [NamedOrHex] spell out the fallback
// base. [EncodeFilter] and [EncodeWith] accept caller-supplied functions
// for finer control than the built-in sets.
//
// # Decoding
//
// Decode accepts &name;, &#digits; and &#xhexdigits; references. It is
// total: malformed, unterminated, or unknown references are never an
// error, their bytes simply pass through unchanged, and every input byte
// ends up in exactly one output unit. A terminated numeric reference
// whose value is beyond U+10FFFF or a UTF-16 surrogate decodes to U+FFFD.
//
// # Streaming
//
// [Decoder] and [Encoder] are golang.org/x/text/transform.Transformer
// implementations of the same conversions for use with transform.Reader
// and transform.Writer, processing input chunk by chunk.
//
// # Thread Safety
//
// The entity table is built once at package init and never mutated, so
// all functions and the streaming transformers are safe for concurrent
// use.
//
// # Example
//
//	data := htmlentity.Encode([]byte(input), htmlentity.Named, htmlentity.SpecialChars)
//	escaped, err := data.Text()
package htmlentity
