package htmlentity

// A CharacterSet selects which characters the encoder escapes. It is a
// classification rule, not a stored collection: Contains is a pure
// predicate over code points.
type CharacterSet uint8

const (
	// SpecialChars covers the five HTML-reserved characters
	// < > & " '. Note that ' encodes as &apos;, which is valid in
	// HTML5 but was never part of HTML4; use NamedOrDecimal encoding
	// if the output must be readable by HTML4-only consumers.
	SpecialChars CharacterSet = iota

	// HTML covers only < > &. Quote characters pass through, which is
	// sufficient for text content outside of attribute values.
	HTML

	// NonASCII covers every code point at or above U+0080.
	NonASCII

	// HTMLAndNonASCII is the union of HTML and NonASCII.
	HTMLAndNonASCII

	// All covers every code point that has a named entity, including
	// plain letters and digits where a name exists.
	All

	// None covers nothing; encoding becomes a pass-through.
	None
)

// Contains reports whether r belongs to the set.
func (s CharacterSet) Contains(r rune) bool {
	switch s {
	case SpecialChars:
		return r == '<' || r == '>' || r == '&' || r == '"' || r == '\''
	case HTML:
		return r == '<' || r == '>' || r == '&'
	case NonASCII:
		return r >= 0x80
	case HTMLAndNonASCII:
		return r >= 0x80 || r == '<' || r == '>' || r == '&'
	case All:
		_, ok := nameByCode[r]
		return ok
	}
	return false
}

// String returns the set's name.
func (s CharacterSet) String() string {
	switch s {
	case SpecialChars:
		return "SpecialChars"
	case HTML:
		return "HTML"
	case NonASCII:
		return "NonASCII"
	case HTMLAndNonASCII:
		return "HTMLAndNonASCII"
	case All:
		return "All"
	case None:
		return "None"
	}
	return "CharacterSet(?)"
}
