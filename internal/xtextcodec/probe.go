// Package xtextcodec adapts golang.org/x/text's stateless
// transform.Transformer codecs to the byte-exact, never-fails decode
// model this module needs: every candidate byte sequence is probed in
// isolation so a caller can tell a genuine table hit apart from the
// library's substitute output (U+FFFD when decoding, encoding.ASCIISub
// when encoding) and from a hard structural error, then decide for itself how many
// bytes to recover as error-binary escapes.
//
// x/text's own Transform, run over a whole buffer, would silently turn
// unmappable sequences into a single substitute rune and give no way to
// recover the original bytes. Probing one candidate at a time trades
// throughput for exactness, which is what this module's lossless
// round-trip requirement demands.
package xtextcodec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeOne feeds candidate through a freshly constructed, stateless
// decoder as a complete, final chunk. ok is false when candidate is not
// a structurally valid character boundary for the wrapped encoding at
// all (wrong length, truncated trail, hard transform error). substituted
// is true when candidate parsed as a single character but the decoder
// wrote a substitute instead of a real image: U+FFFD, which x/text
// decoders emit for a sequence with no Unicode mapping, or
// encoding.ASCIISub.
func DecodeOne(newDecoder func() transform.Transformer, candidate []byte) (r rune, ok bool, substituted bool) {
	dec := newDecoder()
	var buf [8]byte
	nDst, nSrc, err := dec.Transform(buf[:], candidate, true)
	if err != nil || nSrc != len(candidate) || nDst == 0 {
		return 0, false, false
	}
	rr, size := utf8.DecodeRune(buf[:nDst])
	if size != nDst {
		return 0, false, false
	}
	if rr == encoding.ASCIISub || rr == utf8.RuneError {
		return rr, true, true
	}
	return rr, true, false
}

// EncodeOne encodes a single rune through a freshly constructed,
// stateless encoder. ok is false if the encoding has no byte form for r,
// including the case where the encoder silently substitutes its
// ASCII-sub byte for a non-ASCII rune.
func EncodeOne(newEncoder func() transform.Transformer, r rune) (b []byte, ok bool) {
	enc := newEncoder()
	src := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(src, r)
	var buf [8]byte
	nDst, nSrc, err := enc.Transform(buf[:], src, true)
	if err != nil || nSrc != len(src) || nDst == 0 {
		return nil, false
	}
	if r >= utf8.RuneSelf && nDst == 1 && buf[0] == byte(encoding.ASCIISub) {
		return nil, false
	}
	out := make([]byte, nDst)
	copy(out, buf[:nDst])
	return out, true
}
