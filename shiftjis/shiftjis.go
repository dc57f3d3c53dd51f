// Package shiftjis implements the Shift-JIS codec. ASCII and half-width
// kana are handled directly; two-byte JIS X 0208 (plus the NEC/IBM
// extension rows) are delegated to golang.org/x/text/encoding/japanese,
// probed one candidate at a time so undecodable pairs can be split into
// individually-recoverable error-binary escapes instead of a single
// lossy substitute character.
//
// Grounded on the original source's CShiftJis and on the teacher's
// jpeg/baseline.BaselineCodec registration shape.
package shiftjis

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/asciieol"
	"github.com/CrazyForks/sakura-2/internal/errorbinary"
	"github.com/CrazyForks/sakura-2/internal/units"
	"github.com/CrazyForks/sakura-2/internal/xtextcodec"
)

func init() {
	codec.Register(codec.FamilyShiftJis, func(codec.EncodingID) codec.Codec { return New() })
}

// Codec implements codec.Codec for Shift-JIS (code page 932 family).
type Codec struct{}

// New returns a Shift-JIS codec. Stateless; a single shared instance
// may be reused freely.
func New() *Codec { return &Codec{} }

var _ codec.Codec = (*Codec)(nil)

func (*Codec) ID() codec.EncodingID { return codec.ShiftJis() }

func newDecoder() transform.Transformer { return japanese.ShiftJIS.NewDecoder() }
func newEncoder() transform.Transformer { return japanese.ShiftJIS.NewEncoder() }

func isLead(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

func isTrail(b byte) bool {
	return (b >= 0x40 && b <= 0x7E) || (b >= 0x80 && b <= 0xFC)
}

// Decode converts Shift-JIS bytes to units. ASCII passes through
// byte-for-byte; 0xA1-0xDF is half-width kana (single byte, direct
// arithmetic mapping to U+FF61..U+FF9F); two-byte sequences go through
// the x/text JIS X 0208 table. An invalid lead byte escapes alone; a
// structurally-shaped but untabled pair escapes both bytes; a lead
// followed by an out-of-range trail escapes only the lead and
// reprocesses the trail independently.
func (*Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	pos := 0
	for pos < len(b) {
		c0 := b[pos]
		switch {
		case c0 < 0x80:
			out = append(out, uint16(c0))
			pos++
		case c0 >= 0xA1 && c0 <= 0xDF:
			out = append(out, 0xFF61+uint16(c0-0xA1))
			pos++
		case isLead(c0):
			if pos+1 >= len(b) || !isTrail(b[pos+1]) {
				out = append(out, errorbinary.Escape(c0))
				outcome = codec.LostSome
				pos++
				continue
			}
			c1 := b[pos+1]
			r, ok, substituted := xtextcodec.DecodeOne(newDecoder, []byte{c0, c1})
			if ok && !substituted {
				out = units.AppendRune(out, r)
			} else {
				out = append(out, errorbinary.Escape(c0), errorbinary.Escape(c1))
				outcome = codec.LostSome
			}
			pos += 2
		default:
			out = append(out, errorbinary.Escape(c0))
			outcome = codec.LostSome
			pos++
		}
	}
	return out, outcome
}

// Encode converts units to Shift-JIS bytes. A code point with no
// reverse table entry (including the well-known NEC/IBM-extension
// round-trip gap) becomes '?' and LostSome; error-binary escapes and
// half-width kana restore their original byte exactly.
func (*Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(u))
	outcome := codec.Ok
	rest := []uint16(u)
	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			out = append(out, it.Byte)
		case units.ItemRune:
			if it.R >= 0xFF61 && it.R <= 0xFF9F {
				out = append(out, byte(it.R-0xFF61)+0xA1)
			} else if b, ok := xtextcodec.EncodeOne(newEncoder, it.R); ok {
				out = append(out, b...)
			} else {
				out = append(out, '?')
				outcome = codec.LostSome
			}
		default: // bare surrogate
			out = append(out, '?')
			outcome = codec.LostSome
		}
		rest = rest[it.Width:]
	}
	return out, outcome
}

func (*Codec) BOM() []byte { return nil }

func (*Codec) EOL(kind codec.EolKind) []byte { return asciieol.Bytes(kind) }

func (*Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInSjis,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, nativeBytes)
}

func nativeBytes(r rune) ([]byte, bool) {
	if r < utf8.RuneSelf {
		return []byte{byte(r)}, true
	}
	if r >= 0xFF61 && r <= 0xFF9F {
		return []byte{byte(r-0xFF61) + 0xA1}, true
	}
	return xtextcodec.EncodeOne(newEncoder, r)
}
