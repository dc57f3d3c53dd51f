// Package eucjp implements the EUC-JP codec: ASCII plus JIS X 0208
// (kanji) and half-width kana (SS2, lead byte 0x8E), delegated to
// golang.org/x/text/encoding/japanese and probed one candidate at a
// time for byte-exact error-binary recovery. JIS X 0212 (SS3, lead byte
// 0x8F) is not supported, matching the original source's documented
// limitation; any 0x8F is treated as an invalid lead byte.
//
// Grounded on the original source's CEuc and on the teacher's
// jpeg/baseline.BaselineCodec registration shape.
package eucjp

import (
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
	codec.Register(codec.FamilyEucJp, func(codec.EncodingID) codec.Codec { return New() })
}

// Codec implements codec.Codec for EUC-JP.
type Codec struct{}

// New returns an EUC-JP codec. Stateless; a single shared instance may
// be reused freely.
func New() *Codec { return &Codec{} }

var _ codec.Codec = (*Codec)(nil)

func (*Codec) ID() codec.EncodingID { return codec.EucJp() }

func newDecoder() transform.Transformer { return japanese.EUCJP.NewDecoder() }
func newEncoder() transform.Transformer { return japanese.EUCJP.NewEncoder() }

func isKanjiByte(b byte) bool { return b >= 0xA1 && b <= 0xFE }
func isKanaTrail(b byte) bool { return b >= 0xA1 && b <= 0xDF }

// Decode converts EUC-JP bytes to units. See the package comment for
// the lead-byte dispatch; an out-of-range or missing trail escapes only
// the lead byte, a structurally-shaped but untabled pair escapes both
// bytes.
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
		case c0 == 0x8E:
			if pos+1 >= len(b) || !isKanaTrail(b[pos+1]) {
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
		case c0 == 0x8F:
			// JIS X 0212 is not supported: treat as an invalid lead byte.
			out = append(out, errorbinary.Escape(c0))
			outcome = codec.LostSome
			pos++
		case isKanjiByte(c0):
			if pos+1 >= len(b) || !isKanjiByte(b[pos+1]) {
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

// Encode converts units to EUC-JP bytes. A code point with no reverse
// table entry (e.g. U+9DD7, which requires JIS X 0212) becomes '?' and
// LostSome; error-binary escapes restore their original byte exactly.
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
			if b, ok := nativeBytes(it.R); ok {
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
		ShowCodepoint:     cfg.ShowCodepointInEuc,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, nativeBytes)
}

// nativeBytes encodes r through the x/text EUC-JP table, rejecting the
// 3-byte SS3 (0x8F, JIS X 0212) forms that encoder can produce, since
// this codec does not support JIS X 0212.
func nativeBytes(r rune) ([]byte, bool) {
	b, ok := xtextcodec.EncodeOne(newEncoder, r)
	if !ok || b[0] == 0x8F {
		return nil, false
	}
	return b, true
}
