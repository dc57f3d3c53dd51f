// Package latin1 implements the ISO-8859-1 codec: a pure 1:1 mapping
// between bytes and the first 256 Unicode code points. Grounded on the
// original source's CLatin1, the simplest of its codec classes, and on
// the teacher's jpeg/baseline.BaselineCodec self-registration shape.
package latin1

import (
	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/asciieol"
	"github.com/CrazyForks/sakura-2/internal/units"
)

func init() {
	codec.Register(codec.FamilyLatin1, func(codec.EncodingID) codec.Codec { return New() })
}

// Codec implements codec.Codec for ISO-8859-1.
type Codec struct{}

// New returns a Latin-1 codec. A single shared instance may be reused
// freely: Codec carries no state.
func New() *Codec { return &Codec{} }

var _ codec.Codec = (*Codec)(nil)

func (*Codec) ID() codec.EncodingID { return codec.Latin1() }

// Decode maps every byte directly to the identically-valued code point.
// Latin-1 can represent any byte, so this never loses fidelity.
func (*Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, len(b))
	for i, c := range b {
		out[i] = uint16(c)
	}
	return out, codec.Ok
}

// Encode maps code points below U+0100 directly to a byte; anything
// else has no Latin-1 image and becomes '?'. Error-binary escapes
// restore their original byte verbatim.
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
			if it.R < 0x100 {
				out = append(out, byte(it.R))
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

// DisplayHex renders native bytes in lowercase hex, matching the
// original source's Latin-1-specific display convention.
func (*Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInUtf8, // Latin-1 shares the generic single-byte flag; see DESIGN.md
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
		Lower:             true,
	}
	return dispcode.Render(u, opts, nativeBytes)
}

func nativeBytes(r rune) ([]byte, bool) {
	if r < 0x100 {
		return []byte{byte(r)}, true
	}
	return nil, false
}
