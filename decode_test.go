package htmlentity_test

import (
	"bytes"
	"testing"

	"github.com/fefit/htmlentity"
	"github.com/stretchr/testify/assert"
)

func TestDecode_Vectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"named", "&lt;div&gt;", "<div>"},
		{"named aliases", "&AMP;&amp;", "&&"},
		{"hex", "&#x2192;", "→"},
		{"hex uppercase prefix", "&#X2192;", "→"},
		{"hex leading zeros", "&#x0002192;", "→"},
		{"hex uppercase digits", "&#x4E2D;", "中"},
		{"decimal", "&#8594;", "→"},
		{"decimal leading zeros", "&#0008594;", "→"},
		{"mixed text", "a&lt;b &copy; &#169; c", "a<b © © c"},

		// Malformed and unknown references stay literal.
		{"bare ampersand", "&", "&"},
		{"empty reference", "&;", "&;"},
		{"empty numeric", "&#;", "&#;"},
		{"bare hash", "&#", "&#"},
		{"empty hex", "&#x;", "&#x;"},
		{"bad hex digit", "&#xg;", "&#xg;"},
		{"bad hex tail", "&#x0g;", "&#x0g;"},
		{"bad hex mix", "&#xa0fh;", "&#xa0fh;"},
		{"letter in decimal", "&#a;", "&#a;"},
		{"letter before digits", "&#q123;", "&#q123;"},
		{"digits as name", "&123;", "&123;"},
		{"unknown name", "&q123;", "&q123;"},
		{"unknown short name", "&a0;", "&a0;"},
		{"digit-first name", "&0a;", "&0a;"},
		{"unknown long name", "&notarealentity;", "&notarealentity;"},
		{"trailing ampersand", "abc&", "abc&"},
		{"unterminated named", "x&amp", "x&amp"},
		{"ampersand before reference", "&&lt;", "&<"},
		{"abandoned then valid", "&am&amp;", "&am&"},

		// Out-of-range and surrogate values substitute U+FFFD.
		{"beyond unicode hex", "&#x110000;", "�"},
		{"beyond unicode decimal", "&#1114112;", "�"},
		{"surrogate hex", "&#xDC00;", "�"},
		{"surrogate decimal", "&#56320;", "�"},
		{"huge value saturates", "&#99999999999999999999;", "�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlentity.DecodeString(tt.in))
		})
	}
}

func TestDecode_BothBasesAgree(t *testing.T) {
	want := []byte("中") // U+4E2D
	if got := htmlentity.Decode([]byte("&#20013;")).Bytes(); !bytes.Equal(got, want) {
		t.Errorf("decimal: got %q want %q", got, want)
	}
	if got := htmlentity.Decode([]byte("&#x4e2d;")).Bytes(); !bytes.Equal(got, want) {
		t.Errorf("hex: got %q want %q", got, want)
	}
}

func TestDecode_MalformedIsSingleLiteralUnit(t *testing.T) {
	in := []byte("&notarealentity;")
	units := htmlentity.Decode(in).Units()
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	if units[0].Origin != htmlentity.OriginLiteral || !bytes.Equal(units[0].Bytes, in) {
		t.Errorf("unit = %q/%v, want input bytes as one literal", units[0].Bytes, units[0].Origin)
	}
}

func TestDecode_UnitProvenance(t *testing.T) {
	units := htmlentity.Decode([]byte("a&lt;b")).Units()
	want := []struct {
		bytes  string
		origin htmlentity.Origin
	}{
		{"a", htmlentity.OriginLiteral},
		{"<", htmlentity.OriginDecoded},
		{"b", htmlentity.OriginLiteral},
	}
	if len(units) != len(want) {
		t.Fatalf("got %d units, want %d", len(units), len(want))
	}
	for i, w := range want {
		if string(units[i].Bytes) != w.bytes || units[i].Origin != w.origin {
			t.Errorf("unit %d = %q/%v, want %q/%v", i, units[i].Bytes, units[i].Origin, w.bytes, w.origin)
		}
	}
}

func TestDecode_TotalCoverage(t *testing.T) {
	// Decoding always accounts for every input byte: inputs with no valid
	// reference come back byte-identical, and unit lengths always sum to
	// the output length.
	inputs := [][]byte{
		[]byte("no references here"),
		[]byte("&bogus; &#; &#x; & &&&"),
		[]byte("&amp &lt &#60"),
		{0xff, 0xfe, '&', 'a', 'm', 'p'},
		{},
	}
	for _, in := range inputs {
		d := htmlentity.Decode(in)
		if got := d.Bytes(); !bytes.Equal(got, in) {
			t.Errorf("Decode(%q).Bytes() = %q, want unchanged", in, got)
		}
		sum := 0
		for _, u := range d.Units() {
			sum += len(u.Bytes)
		}
		if sum != len(in) {
			t.Errorf("Decode(%q): units cover %d bytes, want %d", in, sum, len(in))
		}
	}
}

func TestDecode_InvalidUTF8PassesThrough(t *testing.T) {
	in := []byte{0x80, 0xff, '&', 'l', 't', ';', 0xc0}
	want := []byte{0x80, 0xff, '<', 0xc0}
	if got := htmlentity.Decode(in).Bytes(); !bytes.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii text",
		"<div class='product'><span>￥</span>100</div>",
		"\t\n  <br>this is a title&lt;main&gt;  ",
		`quotes "double" and 'single'`,
		"中文 mixed with ASCII & symbols → ≤ ©",
		"\U0001F600 emoji",
		string([]byte{0xff, '<', 0xc0, 0x80, '&'}),
	}
	types := []htmlentity.EncodeType{
		htmlentity.Named, htmlentity.Decimal, htmlentity.Hex,
		htmlentity.NamedOrDecimal, htmlentity.NamedOrHex,
	}
	// Restricted to sets that escape '&': with '&' left raw, a reference
	// already present in the input would be decoded, not round-tripped.
	charsets := []htmlentity.CharacterSet{
		htmlentity.SpecialChars, htmlentity.HTML,
		htmlentity.HTMLAndNonASCII, htmlentity.All,
	}
	for _, in := range inputs {
		for _, typ := range types {
			for _, cs := range charsets {
				encoded := htmlentity.Encode([]byte(in), typ, cs)
				back := htmlentity.Decode(encoded.Bytes()).Bytes()
				if !bytes.Equal(back, []byte(in)) {
					t.Errorf("round trip %v/%v: %q -> %q -> %q", typ, cs, in, encoded.Bytes(), back)
				}
			}
		}
	}
}

func TestRoundTrip_AmpersandFreeInput(t *testing.T) {
	in := "no ampersand: <b>世界</b> 'fin'"
	for _, cs := range []htmlentity.CharacterSet{htmlentity.None, htmlentity.NonASCII} {
		encoded := htmlentity.Encode([]byte(in), htmlentity.Named, cs)
		if back := htmlentity.Decode(encoded.Bytes()).Bytes(); string(back) != in {
			t.Errorf("%v: %q -> %q -> %q", cs, in, encoded.Bytes(), back)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	input := bytes.Repeat([]byte("text &amp; refs &lt;div&gt; &#x4e2d; &copy; &bogus; plain "), 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		htmlentity.Decode(input)
	}
}
