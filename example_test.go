package htmlentity_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/fefit/htmlentity"
	"golang.org/x/text/transform"
)

func ExampleEncode() {
	data := htmlentity.Encode([]byte("<div class='header'></div>"), htmlentity.Named, htmlentity.SpecialChars)
	text, _ := data.Text()
	fmt.Println(text)
	// Output: &lt;div class=&apos;header&apos;&gt;&lt;/div&gt;
}

func ExampleEncode_numericFallback() {
	// No named entity exists for 世, so Named falls back to hex.
	fmt.Println(htmlentity.EncodeString("世", htmlentity.NamedOrHex, htmlentity.NonASCII))
	fmt.Println(htmlentity.EncodeString("世", htmlentity.NamedOrDecimal, htmlentity.NonASCII))
	// Output:
	// &#x4e16;
	// &#19990;
}

func ExampleDecode() {
	data := htmlentity.Decode([]byte("&lt;p&gt;100 &euro;&lt;/p&gt;"))
	text, _ := data.Text()
	fmt.Println(text)
	// Output: <p>100 €</p>
}

func ExampleDecode_provenance() {
	for _, u := range htmlentity.Decode([]byte("a&lt;b")).Units() {
		fmt.Printf("%s %q\n", u.Origin, u.Bytes)
	}
	// Output:
	// Literal "a"
	// Decoded "<"
	// Literal "b"
}

func ExampleEncodeWith() {
	// Escape everything the SpecialChars set covers, but render single
	// quotes numerically for HTML4-only consumers.
	data := htmlentity.EncodeWith([]byte("<i class='x'>"), func(r rune) (htmlentity.EncodeType, bool) {
		if r == '\'' {
			return htmlentity.Decimal, true
		}
		return htmlentity.Named, htmlentity.SpecialChars.Contains(r)
	})
	fmt.Println(string(data.Bytes()))
	// Output: &lt;i class=&#39;x&#39;&gt;
}

func ExampleDecoder() {
	r := transform.NewReader(strings.NewReader("&amp; &#x2192; &rarr;"), htmlentity.Decoder{})
	decoded, _ := io.ReadAll(r)
	fmt.Println(string(decoded))
	// Output: & → →
}
