// Package utf7 implements the UTF-7 codec (RFC 2152's "modified
// Base64" transformation format). Like ISO-2022-JP, UTF-7 is exempt
// from the error-binary round-trip guarantee: a byte this codec cannot
// place is written as '?' with LostSome, not restored or shift-encoded.
//
// Grounded on the original source's CUtf7.
package utf7

import (
	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/selfeol"
	"github.com/CrazyForks/sakura-2/internal/units"
)

func init() {
	codec.Register(codec.FamilyUtf7, func(codec.EncodingID) codec.Codec { return New() })
}

// Codec implements codec.Codec for UTF-7.
type Codec struct{}

// New returns a UTF-7 codec. Stateless; a single shared instance may be
// reused freely.
func New() *Codec { return &Codec{} }

var _ codec.Codec = (*Codec)(nil)

func (*Codec) ID() codec.EncodingID { return codec.Utf7() }

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Value [256]int8

func init() {
	for i := range base64Value {
		base64Value[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64Value[base64Alphabet[i]] = int8(i)
	}
}

func isBase64Byte(b byte) bool { return base64Value[b] >= 0 }

// Decode implements RFC 2152 decoding: '+' begins a shifted Base64
// segment (or, followed immediately by '-', the literal character '+');
// every other byte under 0x80 is a direct character. A byte at or above
// 0x80 has no UTF-7 image and is discarded with LostSome.
func (*Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	i := 0
	for i < len(b) {
		c := b[i]
		if c >= 0x80 {
			outcome = codec.LostSome
			i++
			continue
		}
		if c != '+' {
			out = append(out, uint16(c))
			i++
			continue
		}
		// c == '+'
		if i+1 < len(b) && b[i+1] == '-' {
			out = append(out, uint16('+'))
			i += 2
			continue
		}
		i++ // consume '+'
		var bitBuf uint32
		var bitCount uint
		for i < len(b) && isBase64Byte(b[i]) {
			bitBuf = bitBuf<<6 | uint32(base64Value[b[i]])
			bitCount += 6
			i++
			if bitCount >= 16 {
				bitCount -= 16
				out = append(out, uint16(bitBuf>>bitCount))
			}
		}
		if i < len(b) && b[i] == '-' {
			i++ // absorb the explicit terminator
		}
	}
	return out, outcome
}

func isDirect(r rune) bool {
	if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
		return true
	}
	if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '\'', '(', ')', ',', '-', '.', '/', ':', '?':
		return true
	}
	return false
}

// Encode implements RFC 2152 encoding: direct characters pass through
// as-is, '+' becomes "+-", and every other rune (including a bare
// surrogate, which has no raw-byte image in a 7-bit stream) is
// Base64-shifted, always closed with an explicit '-' terminator. An
// error-binary escape is not honored — this codec is exempt from that
// guarantee — so it is written as '?' with LostSome instead of being
// shift-encoded.
func (*Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(u))
	outcome := codec.Ok
	rest := []uint16(u)

	var bitBuf uint32
	var bitCount uint
	inShift := false

	closeShift := func() {
		if !inShift {
			return
		}
		if bitCount > 0 {
			out = append(out, base64Alphabet[(bitBuf<<(6-bitCount))&0x3F])
			bitCount = 0
			bitBuf = 0
		}
		out = append(out, '-')
		inShift = false
	}

	shiftUnit := func(v uint16) {
		if !inShift {
			out = append(out, '+')
			inShift = true
		}
		bitBuf = bitBuf<<16 | uint32(v)
		bitCount += 16
		for bitCount >= 6 {
			bitCount -= 6
			out = append(out, base64Alphabet[(bitBuf>>bitCount)&0x3F])
		}
	}

	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			outcome = codec.LostSome
			closeShift()
			out = append(out, '?')
		case units.ItemRune:
			if it.Width == 1 && it.R == '+' {
				closeShift()
				out = append(out, '+', '-')
			} else if it.Width == 1 && isDirect(it.R) {
				closeShift()
				out = append(out, byte(it.R))
			} else if it.Width == 2 {
				hi, lo := units.SurrogatePair(it.R)
				shiftUnit(hi)
				shiftUnit(lo)
			} else {
				shiftUnit(uint16(it.R))
			}
		default: // bare surrogate
			outcome = codec.LostSome
			shiftUnit(uint16(it.R))
		}
		rest = rest[it.Width:]
	}
	closeShift()
	return out, outcome
}

// BOM returns U+FEFF shift-encoded as UTF-7's own ASCII-only alphabet
// can represent it: "+/v8-".
func (*Codec) BOM() []byte { return []byte("+/v8-") }

func (c *Codec) EOL(kind codec.EolKind) []byte { return selfeol.Bytes(c, kind) }

func (*Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInUtf8,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, nativeBytes)
}

func nativeBytes(r rune) ([]byte, bool) {
	c := New()
	b, outcome := c.Encode(codec.Units{uint16(r)})
	if outcome == codec.LostSome {
		return nil, false
	}
	return b, true
}
