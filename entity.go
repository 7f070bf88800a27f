package htmlentity

// An entityRecord pairs a named character reference (without the leading
// "&" and trailing ";") with the Unicode scalar value it stands for.
// The table itself lives in entities.go.
type entityRecord struct {
	name string
	code rune
}

var (
	codeByName = make(map[string]rune, len(entities))
	nameByCode = make(map[rune]string, len(entities))

	// maxNameLen bounds the decoder's scan window for named candidates.
	maxNameLen int
)

func init() {
	for _, e := range entities {
		codeByName[e.name] = e.code
		if cur, ok := nameByCode[e.code]; !ok || preferName(e.name, cur) {
			nameByCode[e.code] = e.name
		}
		if len(e.name) > maxNameLen {
			maxNameLen = len(e.name)
		}
	}
}

// preferName reports whether a should replace cur as the canonical name
// for a code point. The rule: shortest name wins; on a length tie an
// all-lowercase name wins (so "lt" beats "LT"); remaining ties break
// lexicographically. Round-trip tests depend on this exact ordering.
func preferName(a, cur string) bool {
	if len(a) != len(cur) {
		return len(a) < len(cur)
	}
	if al, cl := isLower(a), isLower(cur); al != cl {
		return al
	}
	return a < cur
}

func isLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}

// EntityCode returns the Unicode scalar value named by the given entity
// name (without "&" and ";"), e.g. EntityCode("lt") == '<'. The second
// return value is false when the name is not a known reference.
func EntityCode(name string) (rune, bool) {
	c, ok := codeByName[name]
	return c, ok
}

// EntityName returns the canonical entity name for a code point, e.g.
// EntityName('<') == "lt". When a code point has several names (aliases
// such as "lt" and "LT"), the canonical one is the shortest, preferring
// all-lowercase on a tie. The second return value is false when no named
// reference exists for the code point.
func EntityName(r rune) (string, bool) {
	n, ok := nameByCode[r]
	return n, ok
}
