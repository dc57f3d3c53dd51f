// Package utf8codec implements the UTF-8 and CESU-8 codecs. Both decode
// and encode through Go's standard unicode/utf8 package, the natural
// choice since Go strings are themselves UTF-8 and the package already
// implements the exact decoding rules (including WTF-8-free strict
// rejection of overlong and surrogate encodings) this module needs.
// CESU-8 differs only in how it represents non-BMP code points: instead
// of UTF-8's 4-byte form, CESU-8 encodes the surrogate pair as two
// separate 3-byte UTF-8 sequences (the "oracle implementation"
// behavior ported from the original source's codeUtf8 test).
//
// Grounded on the original source's CUtf8/CCesu8 and on the teacher's
// jpeg/baseline.BaselineCodec registration shape.
package utf8codec

import (
	"unicode/utf8"

	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/selfeol"
	"github.com/CrazyForks/sakura-2/internal/units"
)

func init() {
	codec.Register(codec.FamilyUtf8, func(codec.EncodingID) codec.Codec { return NewUTF8() })
	codec.Register(codec.FamilyCesu8, func(codec.EncodingID) codec.Codec { return NewCESU8() })
}

// UTF8Codec implements codec.Codec for UTF-8.
type UTF8Codec struct{}

// NewUTF8 returns a UTF-8 codec. Stateless; a single shared instance
// may be reused freely.
func NewUTF8() *UTF8Codec { return &UTF8Codec{} }

var _ codec.Codec = (*UTF8Codec)(nil)

func (*UTF8Codec) ID() codec.EncodingID { return codec.Utf8() }

// Decode walks b as UTF-8. Each byte that does not begin or continue a
// valid sequence becomes an individual error-binary escape, matching
// utf8.DecodeRune's one-byte resynchronization on error.
func (*UTF8Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			out = units.AppendErrorByte(out, b[0])
			outcome = codec.LostSome
			b = b[1:]
			continue
		}
		out = units.AppendRune(out, r)
		b = b[size:]
	}
	return out, outcome
}

// Encode converts units to UTF-8 bytes. Error-binary escapes restore
// their original byte exactly; bare surrogates have no UTF-8 image and
// become '?'.
func (*UTF8Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	return encodeCommon([]uint16(u), false)
}

func (*UTF8Codec) BOM() []byte { return []byte{0xEF, 0xBB, 0xBF} }

func (c *UTF8Codec) EOL(kind codec.EolKind) []byte { return selfeol.Bytes(c, kind) }

func (*UTF8Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInUtf8,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, utf8NativeBytes)
}

func utf8NativeBytes(r rune) ([]byte, bool) {
	b := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(b, r)
	return b, true
}

// CESU8Codec implements codec.Codec for CESU-8.
type CESU8Codec struct{}

// NewCESU8 returns a CESU-8 codec. Stateless; a single shared instance
// may be reused freely.
func NewCESU8() *CESU8Codec { return &CESU8Codec{} }

var _ codec.Codec = (*CESU8Codec)(nil)

func (*CESU8Codec) ID() codec.EncodingID { return codec.Cesu8() }

// Decode accepts CESU-8's two-3-byte-sequence supplementary form: each
// 3-byte group that decodes (via the surrogate-permissive path) to a
// value in the surrogate range is appended as a raw unit rather than
// rejected, so that two adjacent halves later recombine into the
// correct supplementary rune wherever the unit sequence is consumed.
// Any byte that is neither a valid UTF-8 lead/continuation nor part of
// such a group becomes an error-binary escape.
func (*CESU8Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	for len(b) > 0 {
		if r, ok := decodeSurrogateShaped3Byte(b); ok {
			out = append(out, uint16(r))
			b = b[3:]
			continue
		}
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			out = units.AppendErrorByte(out, b[0])
			outcome = codec.LostSome
			b = b[1:]
			continue
		}
		out = units.AppendRune(out, r)
		b = b[size:]
	}
	return out, outcome
}

// decodeSurrogateShaped3Byte recognizes a well-formed 3-byte UTF-8-style
// sequence that encodes a value in the surrogate range U+D800..U+DFFF —
// a shape unicode/utf8 always rejects, since real UTF-8 forbids it, but
// CESU-8 relies on it to carry supplementary characters.
func decodeSurrogateShaped3Byte(b []byte) (rune, bool) {
	if len(b) < 3 {
		return 0, false
	}
	if b[0] < 0xE0 || b[0] > 0xEF {
		return 0, false
	}
	if b[1] < 0x80 || b[1] > 0xBF || b[2] < 0x80 || b[2] > 0xBF {
		return 0, false
	}
	r := rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	if r < 0xD800 || r > 0xDFFF {
		return 0, false
	}
	return r, true
}

// Encode converts units to CESU-8 bytes: a surrogate pair is rendered
// as two independent 3-byte UTF-8 sequences (one per surrogate code
// unit) instead of UTF-8's single 4-byte supplementary form.
func (*CESU8Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	return encodeCommon([]uint16(u), true)
}

func (*CESU8Codec) BOM() []byte { return []byte{0xEF, 0xBB, 0xBF} }

func (c *CESU8Codec) EOL(kind codec.EolKind) []byte { return selfeol.Bytes(c, kind) }

func (*CESU8Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInUtf8,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, utf8NativeBytes)
}

// encodeCommon implements Encode for both codecs; splitSurrogates
// selects CESU-8's per-surrogate 3-byte rendering of non-BMP code
// points and of bare surrogates. Plain UTF-8 has no way to represent a
// bare surrogate and substitutes '?' with LostSome instead.
func encodeCommon(rest []uint16, splitSurrogates bool) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(rest))
	outcome := codec.Ok
	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			out = append(out, it.Byte)
		case units.ItemRune:
			if splitSurrogates && it.Width == 2 {
				hi, lo := units.SurrogatePair(it.R)
				out = appendSurrogateAsUTF8(out, hi)
				out = appendSurrogateAsUTF8(out, lo)
			} else {
				buf := make([]byte, utf8.RuneLen(it.R))
				n := utf8.EncodeRune(buf, it.R)
				out = append(out, buf[:n]...)
			}
		default: // bare surrogate
			if splitSurrogates {
				out = appendSurrogateAsUTF8(out, uint16(it.R))
			} else {
				out = append(out, '?')
				outcome = codec.LostSome
			}
		}
		rest = rest[it.Width:]
	}
	return out, outcome
}

// appendSurrogateAsUTF8 encodes a lone surrogate value as a 3-byte
// sequence using UTF-8's bit layout, matching CESU-8's treatment of
// each half of a supplementary pair as its own pseudo-codepoint.
func appendSurrogateAsUTF8(dst []byte, u16 uint16) []byte {
	r := rune(u16)
	return append(dst,
		byte(0xE0|(r>>12)),
		byte(0x80|((r>>6)&0x3F)),
		byte(0x80|(r&0x3F)),
	)
}
