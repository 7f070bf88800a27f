package htmlentity_test

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fefit/htmlentity"
	"golang.org/x/text/transform"
)

func TestDecoder_Transform(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a&lt;b&#x4e2d;c", "a<b中c"},
		{"&amp; &#169; &rarr;", "& © →"},
		{"&bogus; &#; &#xg;", "&bogus; &#; &#xg;"},
		{"abc&", "abc&"},
		{"&&lt;", "&<"},
		{"no references", "no references"},
		{"", ""},
	}
	for _, tt := range tests {
		got, _, err := transform.String(htmlentity.Decoder{}, tt.in)
		if err != nil {
			t.Fatalf("transform.String(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("decode %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecoder_ChunkBoundaries(t *testing.T) {
	// One byte at a time forces ErrShortSrc in the middle of every
	// reference; output must match the whole-buffer decode.
	in := "start &lt;div&gt; &#x4e16;界 &notit; &amp end"
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(in)), htmlentity.Decoder{})
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want := htmlentity.Decode([]byte(in)).Bytes()
	if string(got) != string(want) {
		t.Errorf("chunked decode = %q, want %q", got, want)
	}
}

func TestEncoder_Transform(t *testing.T) {
	// Zero value escapes SpecialChars as Named.
	got, _, err := transform.String(htmlentity.Encoder{}, "<a href='x'>")
	if err != nil {
		t.Fatal(err)
	}
	if want := "&lt;a href=&apos;x&apos;&gt;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, _, err = transform.String(htmlentity.Encoder{
		Type:    htmlentity.Hex,
		Charset: htmlentity.NonASCII,
	}, "ASCII stays, 世 does not")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ASCII stays, &#x4e16; does not"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_ChunkBoundaries(t *testing.T) {
	// Multi-byte runes split across chunks must be held back, not
	// emitted as malformed singles.
	in := "中文 & more 中文"
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(in)), htmlentity.Encoder{
		Type:    htmlentity.NamedOrDecimal,
		Charset: htmlentity.HTMLAndNonASCII,
	})
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want := htmlentity.Encode([]byte(in), htmlentity.NamedOrDecimal, htmlentity.HTMLAndNonASCII).Bytes()
	if string(got) != string(want) {
		t.Errorf("chunked encode = %q, want %q", got, want)
	}
}

func TestEncoderDecoder_Chain(t *testing.T) {
	in := "round <trip> with '中' &amp; \"quotes\""
	got, _, err := transform.String(transform.Chain(
		htmlentity.Encoder{Type: htmlentity.Named, Charset: htmlentity.HTMLAndNonASCII},
		htmlentity.Decoder{},
	), in)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("chain = %q, want input back", got)
	}
}
