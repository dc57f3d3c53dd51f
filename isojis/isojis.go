// Package isojis implements the ISO-2022-JP codec: a stateful,
// escape-switched 7-bit stream. Kanji lookups reuse EUC-JP's JIS X 0208
// table by converting between JIS's 7-bit code and EUC-JP's 8-bit code
// (the two share an identical 94x94 table, so no second table is
// needed). Unlike every other codec in this module, ISO-2022-JP does not
// honor the error-binary convention: invalid escapes and DEL are simply
// discarded with LostSome, per the original source's documented
// behavior.
//
// Grounded on the original source's CJis and on the teacher's
// jpeg/baseline.BaselineCodec registration shape.
package isojis

import (
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/selfeol"
	"github.com/CrazyForks/sakura-2/internal/units"
	"github.com/CrazyForks/sakura-2/internal/xtextcodec"
)

func init() {
	codec.Register(codec.FamilyJis, func(codec.EncodingID) codec.Codec { return New() })
}

// register is G0, the currently-designated character set.
type register int

const (
	regAscii register = iota
	regJisRoman
	regHalfwidthKana
	regJisX0208
)

// Codec implements codec.Codec for ISO-2022-JP. Codec itself is
// stateless; decoding/encoding state lives on the stack of each call.
type Codec struct{}

// New returns an ISO-2022-JP codec. Stateless; a single shared instance
// may be reused freely.
func New() *Codec { return &Codec{} }

var _ codec.Codec = (*Codec)(nil)

func (*Codec) ID() codec.EncodingID { return codec.Jis() }

func newEucDecoder() transform.Transformer { return japanese.EUCJP.NewDecoder() }
func newEucEncoder() transform.Transformer { return japanese.EUCJP.NewEncoder() }

// Decode walks the 7-bit stream, tracking G0 and dispatching each
// character per the active register. See the package comment for the
// lossy treatment of invalid escapes and DEL.
func (*Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	reg := regAscii
	pos := 0
	for pos < len(b) {
		c0 := b[pos]
		switch {
		case c0 == 0x1B:
			consumed, newReg, ok := decodeEscape(b[pos:])
			if ok {
				reg = newReg
			} else {
				outcome = codec.LostSome
			}
			pos += consumed
		case c0 == 0x7F:
			outcome = codec.LostSome
			pos++
		case c0 < 0x20:
			out = append(out, uint16(c0))
			pos++
		case reg == regAscii:
			out = append(out, uint16(c0))
			pos++
		case reg == regJisRoman:
			out = append(out, jisRomanRune(c0))
			pos++
		case reg == regHalfwidthKana:
			if c0 >= 0x21 && c0 <= 0x5F {
				out = append(out, 0xFF61+uint16(c0-0x21))
			} else {
				outcome = codec.LostSome
			}
			pos++
		default: // regJisX0208
			if pos+1 >= len(b) || !inJisRange(b[pos+1]) || !inJisRange(c0) {
				outcome = codec.LostSome
				pos++
				continue
			}
			c1 := b[pos+1]
			r, ok, substituted := xtextcodec.DecodeOne(newEucDecoder, []byte{c0 | 0x80, c1 | 0x80})
			if ok && !substituted {
				out = units.AppendRune(out, r)
			} else {
				outcome = codec.LostSome
			}
			pos += 2
		}
	}
	return out, outcome
}

func inJisRange(b byte) bool { return b >= 0x21 && b <= 0x7E }

func jisRomanRune(b byte) uint16 {
	switch b {
	case 0x5C:
		return 0x00A5 // yen sign
	case 0x7E:
		return 0x203E // overline
	default:
		return uint16(b)
	}
}

// decodeEscape interprets an escape sequence starting at b[0] == 0x1B.
// consumed is always >= 1. ok is false for an unrecognized sequence,
// including a lone or dangling ESC.
func decodeEscape(b []byte) (consumed int, reg register, ok bool) {
	if len(b) < 2 {
		return 1, 0, false
	}
	if b[1] != '(' && b[1] != '$' {
		return 1, 0, false
	}
	if len(b) < 3 {
		return len(b), 0, false
	}
	switch {
	case b[1] == '(' && b[2] == 'B':
		return 3, regAscii, true
	case b[1] == '(' && b[2] == 'J':
		return 3, regJisRoman, true
	case b[1] == '(' && b[2] == 'I':
		return 3, regHalfwidthKana, true
	case b[1] == '$' && b[2] == '@':
		return 3, regJisX0208, true
	case b[1] == '$' && b[2] == 'B':
		return 3, regJisX0208, true
	default:
		return 3, 0, false
	}
}

// Encode converts units to ISO-2022-JP bytes, switching G0 as needed.
// This codec does not honor the error-binary convention (it is exempt
// per spec.md Invariant 2), so every error-binary escape becomes '?'
// with LostSome regardless of the byte it encodes.
func (*Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(u))
	outcome := codec.Ok
	reg := regAscii
	rest := []uint16(u)

	switchTo := func(target register, esc []byte) {
		if reg != target {
			out = append(out, esc...)
			reg = target
		}
	}

	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			switchTo(regAscii, []byte{0x1B, '(', 'B'})
			out = append(out, '?')
			outcome = codec.LostSome
		case units.ItemRune:
			r := it.R
			switch {
			case r < 0x80:
				switchTo(regAscii, []byte{0x1B, '(', 'B'})
				out = append(out, byte(r))
			case r >= 0xFF61 && r <= 0xFF9F:
				switchTo(regHalfwidthKana, []byte{0x1B, '(', 'I'})
				out = append(out, byte(r-0xFF61)+0x21)
			default:
				if b, ok := xtextcodec.EncodeOne(newEucEncoder, r); ok && len(b) == 2 {
					switchTo(regJisX0208, []byte{0x1B, '$', 'B'})
					out = append(out, b[0]&0x7F, b[1]&0x7F)
				} else {
					switchTo(regAscii, []byte{0x1B, '(', 'B'})
					out = append(out, '?')
					outcome = codec.LostSome
				}
			}
		default: // bare surrogate
			switchTo(regAscii, []byte{0x1B, '(', 'B'})
			out = append(out, '?')
			outcome = codec.LostSome
		}
		rest = rest[it.Width:]
	}
	if reg != regAscii {
		out = append(out, 0x1B, '(', 'B')
	}
	return out, outcome
}

func (*Codec) BOM() []byte { return nil }

func (c *Codec) EOL(kind codec.EolKind) []byte { return selfeol.Bytes(c, kind) }

func (*Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInJis,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, nativeBytes)
}

// nativeBytes renders the raw character payload bytes for one code
// point with the high bit cleared and with no surrounding escape
// sequence, matching the original source's display-hex convention of
// showing only the JIS code, not the register-switch bytes around it.
func nativeBytes(r rune) ([]byte, bool) {
	if r < 0x80 {
		return []byte{byte(r)}, true
	}
	if r >= 0xFF61 && r <= 0xFF9F {
		return []byte{byte(r-0xFF61) + 0x21}, true
	}
	if b, ok := xtextcodec.EncodeOne(newEucEncoder, r); ok && len(b) == 2 {
		return []byte{b[0] & 0x7F, b[1] & 0x7F}, true
	}
	return nil, false
}
