package htmlentity

import (
	"testing"
	"unicode/utf8"
)

// The table invariants the codec depends on, checked over the full data
// set rather than samples.

func TestTable_NamesMatchReferenceGrammar(t *testing.T) {
	seen := make(map[string]bool, len(entities))
	for _, e := range entities {
		if e.name == "" {
			t.Fatal("empty entity name in table")
		}
		for i := 0; i < len(e.name); i++ {
			if !isAlnum(e.name[i]) {
				t.Errorf("entity %q contains non-alphanumeric byte %q", e.name, e.name[i])
			}
		}
		if seen[e.name] {
			t.Errorf("duplicate entity name %q", e.name)
		}
		seen[e.name] = true
		if !utf8.ValidRune(e.code) || e.code >= 0xD800 && e.code <= 0xDFFF {
			t.Errorf("entity %q maps to invalid scalar %#x", e.name, e.code)
		}
	}
}

func TestTable_CanonicalNameResolvesBack(t *testing.T) {
	for code, name := range nameByCode {
		if got, ok := codeByName[name]; !ok || got != code {
			t.Errorf("canonical name %q for %#x resolves to %#x, %v", name, code, got, ok)
		}
	}
}

func TestTable_CanonicalIsMinimal(t *testing.T) {
	// No alias may beat the chosen canonical name under the documented
	// rule: shortest, then all-lowercase, then lexicographic.
	for _, e := range entities {
		canon := nameByCode[e.code]
		if e.name != canon && preferName(e.name, canon) {
			t.Errorf("alias %q should have beaten canonical %q for %#x", e.name, canon, e.code)
		}
	}
}

func TestTable_ScanWindow(t *testing.T) {
	if maxNameLen != 31 {
		t.Errorf("maxNameLen = %d, want 31 (CounterClockwiseContourIntegral)", maxNameLen)
	}
}
