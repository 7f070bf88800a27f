package htmlentity

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// A Decoder is a streaming variant of Decode implementing
// golang.org/x/text/transform.Transformer, for use with transform.Reader,
// transform.Writer, or transform chains. It applies the same grammar and
// the same abandon-to-literal policy as Decode, with one bound Decode does
// not need: candidates longer than the longest named reference plus its
// punctuation pass through literally, so the transformer never buffers an
// unbounded run of digits across chunks. Provenance tags are not
// available in this form. The zero value is ready to use and stateless,
// so a single Decoder is safe for concurrent transforms.
type Decoder struct{}

// Transform decodes entity references from src into dst.
func (Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c != '&' {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		// Collect the longest run of bytes that could still form a
		// reference. The breaking byte is not part of the candidate.
		refLen := 1
		maxRefLen := maxNameLen + 2
		for refLen < maxRefLen {
			if nSrc+refLen == len(src) {
				if atEOF {
					break
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			if b := src[nSrc+refLen]; isAlnum(b) || refLen == 1 && b == '#' || b == ';' {
				refLen++
				if b == ';' {
					break
				}
			} else {
				break
			}
		}

		cand := src[nSrc : nSrc+refLen]
		if repl, width := parseReference(cand); repl != nil {
			if len(dst)-nDst < len(repl) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], repl)
			nSrc += width
			continue
		}
		// No valid reference; the candidate bytes are literal.
		if len(dst)-nDst < len(cand) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], cand)
		nSrc += refLen
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer; a Decoder carries no state.
func (Decoder) Reset() {}

// An Encoder is a streaming variant of Encode implementing
// golang.org/x/text/transform.Transformer. The zero value escapes
// SpecialChars as Named references.
type Encoder struct {
	Type    EncodeType
	Charset CharacterSet
}

// Transform escapes characters from src into dst per the Encoder's
// configuration. Partial UTF-8 sequences at the end of a non-final chunk
// are held back with ErrShortSrc; malformed bytes pass through.
func (e Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}
		out := src[nSrc : nSrc+size]
		if e.Charset.Contains(r) {
			if ref := appendReference(nil, r, e.Type); ref != nil {
				out = ref
			}
		}
		if len(dst)-nDst < len(out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer; an Encoder carries no state.
func (Encoder) Reset() {}
