// Package utf32codec implements the UTF-32LE and UTF-32BE codecs. Each
// 4-byte group decodes to one code point (one or two units); a
// mis-sized group or an out-of-range value becomes error-binary escapes
// for each of its raw bytes.
//
// Grounded on the original source's CUnicode family's 32-bit variants.
package utf32codec

import (
	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/selfeol"
	"github.com/CrazyForks/sakura-2/internal/units"
)

func init() {
	codec.Register(codec.FamilyUnicode32Le, func(codec.EncodingID) codec.Codec { return NewLE() })
	codec.Register(codec.FamilyUnicode32Be, func(codec.EncodingID) codec.Codec { return NewBE() })
}

// Codec implements codec.Codec for UTF-32, in either byte order.
type Codec struct {
	big bool
}

// NewLE returns a UTF-32LE codec. Stateless; a single shared instance
// may be reused freely.
func NewLE() *Codec { return &Codec{big: false} }

// NewBE returns a UTF-32BE codec. Stateless; a single shared instance
// may be reused freely.
func NewBE() *Codec { return &Codec{big: true} }

var _ codec.Codec = (*Codec)(nil)

func (c *Codec) ID() codec.EncodingID {
	if c.big {
		return codec.Unicode32Be()
	}
	return codec.Unicode32Le()
}

func (c *Codec) readScalar(b []byte) uint32 {
	if c.big {
		return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
}

func (c *Codec) writeScalar(dst []byte, v uint32) {
	if c.big {
		dst[0] = byte(v >> 24)
		dst[1] = byte(v >> 16)
		dst[2] = byte(v >> 8)
		dst[3] = byte(v)
	} else {
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	}
}

func isValidScalar(v uint32) bool {
	if v > 0x10FFFF {
		return false
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return false
	}
	return true
}

// Decode reads each 4-byte group as one Unicode scalar value, appending
// a surrogate pair for non-BMP values. A group that is out of range, or
// a trailing partial group, escapes every one of its raw bytes
// individually.
func (c *Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b)/4+1)
	outcome := codec.Ok
	i := 0
	for i+3 < len(b) {
		v := c.readScalar(b[i : i+4])
		if isValidScalar(v) {
			out = units.AppendRune(out, rune(v))
		} else {
			for _, bb := range b[i : i+4] {
				out = units.AppendErrorByte(out, bb)
			}
			outcome = codec.LostSome
		}
		i += 4
	}
	for ; i < len(b); i++ {
		out = units.AppendErrorByte(out, b[i])
		outcome = codec.LostSome
	}
	return out, outcome
}

// Encode writes each code point as a 4-byte scalar value. A bare
// surrogate has no UTF-32 image and becomes U+FFFD with LostSome;
// error-binary escapes restore their original byte exactly.
func (c *Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(u)*4)
	outcome := codec.Ok
	rest := []uint16(u)
	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			out = append(out, it.Byte)
		case units.ItemRune:
			var buf [4]byte
			c.writeScalar(buf[:], uint32(it.R))
			out = append(out, buf[:]...)
		default: // bare surrogate
			var buf [4]byte
			c.writeScalar(buf[:], 0xFFFD)
			out = append(out, buf[:]...)
			outcome = codec.LostSome
		}
		rest = rest[it.Width:]
	}
	return out, outcome
}

func (c *Codec) BOM() []byte {
	if c.big {
		return []byte{0x00, 0x00, 0xFE, 0xFF}
	}
	return []byte{0xFF, 0xFE, 0x00, 0x00}
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
	var buf [4]byte
	c.writeScalar(buf[:], uint32(r))
	return buf[:], true
}
