package htmlentity

import "unicode/utf8"

// Decode scans data for entity references of the forms &name;, &#digits;
// and &#xhexdigits;, replacing each complete, valid reference with the
// UTF-8 bytes of the character it names. Everything else, including
// malformed, unterminated, or unknown references, passes through
// byte-for-byte as literal units. Decode never fails and the returned
// CodedData always covers every input byte exactly once.
func Decode(data []byte) *CodedData {
	d := &CodedData{}
	lit := 0 // start of the pending literal run
	for i := 0; i < len(data); {
		if data[i] != '&' {
			i++
			continue
		}
		repl, width := parseReference(data[i:])
		if repl == nil {
			// Abandoned candidate: the '&' and whatever followed it
			// stay in the literal run.
			i++
			continue
		}
		if i > lit {
			d.append(data[lit:i], OriginLiteral)
		}
		d.append(repl, OriginDecoded)
		i += width
		lit = i
	}
	if lit < len(data) {
		d.append(data[lit:], OriginLiteral)
	}
	return d
}

// DecodeString is a convenience for string input and output. Decoding a
// valid UTF-8 string always yields valid UTF-8 (numeric references for
// invalid scalar values decode to U+FFFD), so no error case exists here.
func DecodeString(content string) string {
	return string(Decode([]byte(content)).Bytes())
}

// parseReference attempts to read one complete entity reference at the
// start of b, where b[0] is known to be '&'. It returns the replacement
// bytes and the number of input bytes consumed, or (nil, 0) when no valid
// reference starts here.
func parseReference(b []byte) ([]byte, int) {
	if len(b) < 2 {
		return nil, 0
	}
	if b[1] == '#' {
		return parseNumeric(b)
	}
	return parseNamed(b)
}

// parseNamed reads "&name;" and resolves the name against the entity
// table. Candidates longer than the longest table name are abandoned.
func parseNamed(b []byte) ([]byte, int) {
	i := 1
	for i < len(b) && i-1 <= maxNameLen {
		c := b[i]
		if isAlnum(c) {
			i++
			continue
		}
		if c != ';' || i == 1 {
			return nil, 0
		}
		code, ok := codeByName[string(b[1:i])]
		if !ok {
			return nil, 0
		}
		return utf8.AppendRune(nil, code), i + 1
	}
	return nil, 0
}

// parseNumeric reads "&#digits;" or "&#xhexdigits;". A terminated
// reference with at least one digit always decodes: values beyond
// U+10FFFF and surrogate code points become U+FFFD rather than an error.
func parseNumeric(b []byte) ([]byte, int) {
	i := 2
	hex := false
	if i < len(b) && (b[i] == 'x' || b[i] == 'X') {
		hex = true
		i++
	}
	start := i
	val := 0
	for i < len(b) && b[i] != ';' {
		d, ok := digitVal(b[i], hex)
		if !ok {
			return nil, 0
		}
		// Saturate instead of overflowing; anything past the Unicode
		// range decodes to U+FFFD regardless of how far past it is.
		if val <= utf8.MaxRune {
			if hex {
				val = val*16 + d
			} else {
				val = val*10 + d
			}
		}
		i++
	}
	if i >= len(b) || i == start {
		return nil, 0
	}
	r := rune(val)
	if val > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		r = utf8.RuneError
	}
	return utf8.AppendRune(nil, r), i + 1
}

// --- helpers ---------------------------------------------------------

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func digitVal(c byte, hex bool) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case hex && 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case hex && 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
