package htmlentity_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fefit/htmlentity"
	"github.com/stretchr/testify/assert"
)

func TestEncode_Vectors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		typ     htmlentity.EncodeType
		charset htmlentity.CharacterSet
		want    string
	}{
		{
			name:    "named special chars",
			in:      "<div class='header'></div>",
			typ:     htmlentity.Named,
			charset: htmlentity.SpecialChars,
			want:    "&lt;div class=&apos;header&apos;&gt;&lt;/div&gt;",
		},
		{
			name:    "html set leaves quotes alone",
			in:      `<div>&nbsp;'"</div>`,
			typ:     htmlentity.Named,
			charset: htmlentity.HTML,
			want:    `&lt;div&gt;&amp;nbsp;'"&lt;/div&gt;`,
		},
		{
			name:    "special chars escape quotes",
			in:      `<div>&nbsp;'"</div>`,
			typ:     htmlentity.Named,
			charset: htmlentity.SpecialChars,
			want:    "&lt;div&gt;&amp;nbsp;&apos;&quot;&lt;/div&gt;",
		},
		{
			name:    "hex fallback for unnamed code point",
			in:      "世",
			typ:     htmlentity.NamedOrHex,
			charset: htmlentity.NonASCII,
			want:    "&#x4e16;",
		},
		{
			name:    "named falls back to hex too",
			in:      "世",
			typ:     htmlentity.Named,
			charset: htmlentity.NonASCII,
			want:    "&#x4e16;",
		},
		{
			name:    "decimal fallback for unnamed code point",
			in:      "世",
			typ:     htmlentity.NamedOrDecimal,
			charset: htmlentity.NonASCII,
			want:    "&#19990;",
		},
		{
			name:    "named non-ascii",
			in:      "© 100 →",
			typ:     htmlentity.Named,
			charset: htmlentity.NonASCII,
			want:    "&copy; 100&nbsp;&rarr;",
		},
		{
			name:    "decimal",
			in:      "<>",
			typ:     htmlentity.Decimal,
			charset: htmlentity.SpecialChars,
			want:    "&#60;&#62;",
		},
		{
			name:    "hex",
			in:      "&",
			typ:     htmlentity.Hex,
			charset: htmlentity.SpecialChars,
			want:    "&#x26;",
		},
		{
			name:    "all escapes punctuation with names",
			in:      "a(b)c",
			typ:     htmlentity.Named,
			charset: htmlentity.All,
			want:    "a&lpar;b&rpar;c",
		},
		{
			name:    "none is a pass-through",
			in:      "<b>&amp; untouched</b>",
			typ:     htmlentity.Named,
			charset: htmlentity.None,
			want:    "<b>&amp; untouched</b>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlentity.EncodeString(tt.in, tt.typ, tt.charset)
			assert.Equal(t, tt.want, got)

			data := htmlentity.Encode([]byte(tt.in), tt.typ, tt.charset)
			assert.Equal(t, []byte(tt.want), data.Bytes())
			assert.Equal(t, len(tt.want), data.Len())
		})
	}
}

func TestEncode_MalformedBytesPassThrough(t *testing.T) {
	in := []byte{0xff, '<', 0xfe}
	got := htmlentity.Encode(in, htmlentity.Named, htmlentity.SpecialChars).Bytes()
	want := append([]byte{0xff}, "&lt;"...)
	want = append(want, 0xfe)
	if !bytes.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestEncode_NoneIdentity(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain"),
		[]byte("<a href='x'>&amp;</a>"),
		[]byte("世界"),
		{0xff, 0xc0, '&', 0x80},
		{},
	}
	for _, in := range inputs {
		for _, typ := range []htmlentity.EncodeType{
			htmlentity.Named, htmlentity.Decimal, htmlentity.Hex,
			htmlentity.NamedOrDecimal, htmlentity.NamedOrHex,
		} {
			got := htmlentity.Encode(in, typ, htmlentity.None).Bytes()
			if !bytes.Equal(got, in) {
				t.Errorf("Encode(%q, %v, None) = %q, want input unchanged", in, typ, got)
			}
		}
	}
}

func TestEncode_UnitProvenance(t *testing.T) {
	units := htmlentity.Encode([]byte("a<b"), htmlentity.Named, htmlentity.SpecialChars).Units()
	if len(units) != 3 {
		t.Fatalf("got %d units, want 3", len(units))
	}
	want := []struct {
		bytes  string
		origin htmlentity.Origin
	}{
		{"a", htmlentity.OriginLiteral},
		{"&lt;", htmlentity.OriginEncoded},
		{"b", htmlentity.OriginLiteral},
	}
	for i, w := range want {
		if string(units[i].Bytes) != w.bytes || units[i].Origin != w.origin {
			t.Errorf("unit %d = %q/%v, want %q/%v", i, units[i].Bytes, units[i].Origin, w.bytes, w.origin)
		}
	}
}

func TestEncodeFilter(t *testing.T) {
	got := htmlentity.EncodeFilter(
		[]byte("<div class='header'></div>"),
		htmlentity.Named,
		func(r rune) bool { return r == '<' },
	).Bytes()
	want := "&lt;div class='header'>&lt;/div>"
	if string(got) != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeWith(t *testing.T) {
	// Escape everything that has a name, except '<'.
	got := htmlentity.EncodeWith([]byte("\t<div>"), func(r rune) (htmlentity.EncodeType, bool) {
		if r == '<' {
			return 0, false
		}
		if _, ok := htmlentity.EntityName(r); !ok {
			return 0, false
		}
		return htmlentity.Named, true
	}).Bytes()
	if string(got) != "&Tab;<div&gt;" {
		t.Errorf("got %q want %q", got, "&Tab;<div&gt;")
	}

	// Single quotes as decimal, remaining special characters named.
	got = htmlentity.EncodeWith([]byte("<div class='header'></div>"), func(r rune) (htmlentity.EncodeType, bool) {
		if r == '\'' {
			return htmlentity.Decimal, true
		}
		return htmlentity.NamedOrDecimal, htmlentity.SpecialChars.Contains(r)
	}).Bytes()
	want := "&lt;div class=&#39;header&#39;&gt;&lt;/div&gt;"
	if string(got) != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncode_EmittedReferenceGrammar(t *testing.T) {
	// Every emitted reference starts with '&', ends with ';', and its body
	// is a name, #digits, or #x hex-digits.
	in := []byte("<>&\"' 世\U0001F600")
	for _, typ := range []htmlentity.EncodeType{
		htmlentity.Named, htmlentity.Decimal, htmlentity.Hex,
		htmlentity.NamedOrDecimal, htmlentity.NamedOrHex,
	} {
		for _, u := range htmlentity.Encode(in, typ, htmlentity.HTMLAndNonASCII).Units() {
			if u.Origin != htmlentity.OriginEncoded {
				continue
			}
			s := string(u.Bytes)
			if !strings.HasPrefix(s, "&") || !strings.HasSuffix(s, ";") || len(s) < 3 {
				t.Fatalf("%v: bad reference %q", typ, s)
			}
			if decoded := htmlentity.DecodeString(s); decoded == s {
				t.Errorf("%v: emitted reference %q does not decode", typ, s)
			}
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	input := bytes.Repeat([]byte("plain text <div class='product'>￥100 &amp; more</div> "), 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		htmlentity.Encode(input, htmlentity.Named, htmlentity.HTMLAndNonASCII)
	}
}
