// Package utf16codec implements the UTF-16LE and UTF-16BE codecs. Units
// already are 16-bit code units, so decode/encode is direct byte-pair
// (de)interleaving with no table lookups; surrogates, paired or bare,
// pass through verbatim. A trailing orphan byte (odd-length input)
// becomes a single error-binary escape.
//
// Grounded on the original source's CUnicode/CUnicodeBe.
package utf16codec

import (
	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/selfeol"
	"github.com/CrazyForks/sakura-2/internal/units"
)

func init() {
	codec.Register(codec.FamilyUnicode16Le, func(codec.EncodingID) codec.Codec { return NewLE() })
	codec.Register(codec.FamilyUnicode16Be, func(codec.EncodingID) codec.Codec { return NewBE() })
}

// Codec implements codec.Codec for UTF-16, in either byte order.
type Codec struct {
	big bool
}

// NewLE returns a UTF-16LE codec. Stateless; a single shared instance
// may be reused freely.
func NewLE() *Codec { return &Codec{big: false} }

// NewBE returns a UTF-16BE codec. Stateless; a single shared instance
// may be reused freely.
func NewBE() *Codec { return &Codec{big: true} }

var _ codec.Codec = (*Codec)(nil)

func (c *Codec) ID() codec.EncodingID {
	if c.big {
		return codec.Unicode16Be()
	}
	return codec.Unicode16Le()
}

func (c *Codec) readUnit(b []byte) uint16 {
	if c.big {
		return uint16(b[0])<<8 | uint16(b[1])
	}
	return uint16(b[1])<<8 | uint16(b[0])
}

func (c *Codec) writeUnit(dst []byte, u uint16) {
	if c.big {
		dst[0] = byte(u >> 8)
		dst[1] = byte(u)
	} else {
		dst[0] = byte(u)
		dst[1] = byte(u >> 8)
	}
}

// Decode pairs up bytes into units verbatim, byte order per c.big. An
// odd trailing byte has no pair and becomes an error-binary escape.
func (c *Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b)/2+1)
	outcome := codec.Ok
	i := 0
	for i+1 < len(b) {
		out = append(out, c.readUnit(b[i:i+2]))
		i += 2
	}
	if i < len(b) {
		out = units.AppendErrorByte(out, b[i])
		outcome = codec.LostSome
	}
	return out, outcome
}

// Encode writes each unit as a 2-byte pair verbatim, including bare
// surrogates (UTF-16 has no other representation to fall back to).
// Error-binary escapes restore their single orphan byte exactly.
func (c *Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(u)*2)
	outcome := codec.Ok
	rest := []uint16(u)
	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			out = append(out, it.Byte)
		case units.ItemRune:
			if it.Width == 2 {
				hi, lo := units.SurrogatePair(it.R)
				var buf [2]byte
				c.writeUnit(buf[:], hi)
				out = append(out, buf[:]...)
				c.writeUnit(buf[:], lo)
				out = append(out, buf[:]...)
			} else {
				var buf [2]byte
				c.writeUnit(buf[:], uint16(it.R))
				out = append(out, buf[:]...)
			}
		default: // bare surrogate
			var buf [2]byte
			c.writeUnit(buf[:], uint16(it.R))
			out = append(out, buf[:]...)
		}
		rest = rest[it.Width:]
	}
	return out, outcome
}

func (c *Codec) BOM() []byte {
	if c.big {
		return []byte{0xFE, 0xFF}
	}
	return []byte{0xFF, 0xFE}
}

func (c *Codec) EOL(kind codec.EolKind) []byte { return selfeol.Bytes(c, kind) }

func (c *Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInUtf8,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, c.nativeBytes)
}

func (c *Codec) nativeBytes(r rune) ([]byte, bool) {
	var buf [2]byte
	c.writeUnit(buf[:], uint16(r))
	return buf[:], true
}
