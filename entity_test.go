package htmlentity_test

import (
	"testing"

	"github.com/fefit/htmlentity"
)

func TestEntityCode(t *testing.T) {
	tests := []struct {
		name string
		want rune
		ok   bool
	}{
		{"lt", '<', true},
		{"LT", '<', true},
		{"gt", '>', true},
		{"amp", '&', true},
		{"AMP", '&', true},
		{"quot", '"', true},
		{"apos", '\'', true},
		{"Tab", '\t', true},
		{"NewLine", '\n', true},
		{"nbsp", ' ', true},
		{"rarr", '→', true},
		{"euro", '€', true},
		{"bogus", 0, false},
		{"", 0, false},
		{"lt;", 0, false},
		{"&lt", 0, false},
	}
	for _, tt := range tests {
		got, ok := htmlentity.EntityCode(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("EntityCode(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEntityName_Canonical(t *testing.T) {
	// Aliases resolve to the shortest name, all-lowercase preferred.
	tests := []struct {
		r    rune
		want string
	}{
		{'<', "lt"},
		{'>', "gt"},
		{'&', "amp"},
		{'"', "quot"},
		{'\'', "apos"},
		{'\t', "Tab"},
		{' ', "nbsp"},   // not NonBreakingSpace
		{'→', "rarr"},   // not RightArrow and friends
		{'©', "copy"},   // not COPY
		{'≤', "le"},     // not leq
		{'Δ', "Delta"},  // sole name, uppercase kept
		{'€', "euro"},
	}
	for _, tt := range tests {
		got, ok := htmlentity.EntityName(tt.r)
		if !ok || got != tt.want {
			t.Errorf("EntityName(%q) = %q, %v; want %q", tt.r, got, ok, tt.want)
		}
	}
}

func TestEntityName_Missing(t *testing.T) {
	for _, r := range []rune{'a', '0', '世', 0x10FFFF} {
		if name, ok := htmlentity.EntityName(r); ok {
			t.Errorf("EntityName(%q) = %q, want no name", r, name)
		}
	}
}
