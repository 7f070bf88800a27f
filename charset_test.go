package htmlentity_test

import (
	"strings"
	"testing"

	"github.com/fefit/htmlentity"
)

func TestCharacterSet_ASCIIBand(t *testing.T) {
	// Exhaustive over the ASCII range, where the reserved characters live.
	for r := rune(0); r < 0x80; r++ {
		special := strings.ContainsRune(`<>&"'`, r)
		html := strings.ContainsRune(`<>&`, r)
		checks := []struct {
			set  htmlentity.CharacterSet
			want bool
		}{
			{htmlentity.SpecialChars, special},
			{htmlentity.HTML, html},
			{htmlentity.NonASCII, false},
			{htmlentity.HTMLAndNonASCII, html},
			{htmlentity.None, false},
		}
		for _, c := range checks {
			if got := c.set.Contains(r); got != c.want {
				t.Errorf("%v.Contains(%q) = %v, want %v", c.set, r, got, c.want)
			}
		}
	}
}

func TestCharacterSet_NonASCII(t *testing.T) {
	for _, r := range []rune{0x80, 0xa0, '©', '世', 0x10FFFF} {
		if !htmlentity.NonASCII.Contains(r) {
			t.Errorf("NonASCII.Contains(%q) = false", r)
		}
		if !htmlentity.HTMLAndNonASCII.Contains(r) {
			t.Errorf("HTMLAndNonASCII.Contains(%q) = false", r)
		}
	}
}

func TestCharacterSet_All(t *testing.T) {
	// All contains exactly the code points with a named entity.
	for _, r := range []rune{'<', '&', '(', '©', '\t', 0x2192} {
		if !htmlentity.All.Contains(r) {
			t.Errorf("All.Contains(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', 'Z', '0', ' ', '世'} {
		if htmlentity.All.Contains(r) {
			t.Errorf("All.Contains(%q) = true, want false", r)
		}
	}
}

func TestCharacterSet_String(t *testing.T) {
	names := map[htmlentity.CharacterSet]string{
		htmlentity.SpecialChars:    "SpecialChars",
		htmlentity.HTML:            "HTML",
		htmlentity.NonASCII:        "NonASCII",
		htmlentity.HTMLAndNonASCII: "HTMLAndNonASCII",
		htmlentity.All:             "All",
		htmlentity.None:            "None",
	}
	for set, want := range names {
		if got := set.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
