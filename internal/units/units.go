// Package units provides the shared iteration and construction helpers
// every codec uses to walk a Unicode code-unit sequence one logical item
// at a time: a plain rune, a surrogate-pair rune, a bare (unpaired)
// surrogate, or an error-binary escape.
package units

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/CrazyForks/sakura-2/internal/errorbinary"
)

// ItemKind discriminates the shape of the item Next returned.
type ItemKind int

const (
	// ItemRune is a valid code point, either a single BMP unit or a
	// high/low surrogate pair.
	ItemRune ItemKind = iota
	// ItemErrorByte is a single error-binary escape unit.
	ItemErrorByte
	// ItemBareSurrogate is a surrogate unit with no valid pairing: a low
	// surrogate outside the escape range, or a high surrogate not
	// followed by a low surrogate.
	ItemBareSurrogate
)

// Item is one logical element of a unit sequence.
type Item struct {
	Kind  ItemKind
	R     rune // valid for ItemRune and ItemBareSurrogate
	Byte  byte // valid for ItemErrorByte
	Width int  // number of units consumed; 0 only for an empty input
}

// Next classifies and measures the first logical item in u. The caller
// advances by re-slicing u[item.Width:]. Next never panics; it returns a
// zero-width Item for an empty slice.
func Next(u []uint16) Item {
	if len(u) == 0 {
		return Item{}
	}
	c0 := u[0]

	if c0 >= 0xD800 && c0 <= 0xDBFF {
		if len(u) >= 2 {
			c1 := u[1]
			if c1 >= 0xDC00 && c1 <= 0xDFFF {
				r := utf16.DecodeRune(rune(c0), rune(c1))
				if r != utf8.RuneError {
					return Item{Kind: ItemRune, R: r, Width: 2}
				}
			}
		}
		return Item{Kind: ItemBareSurrogate, R: rune(c0), Width: 1}
	}

	if c0 >= 0xDC00 && c0 <= 0xDFFF {
		if errorbinary.IsEscape(c0) {
			return Item{Kind: ItemErrorByte, Byte: errorbinary.Byte(c0), Width: 1}
		}
		return Item{Kind: ItemBareSurrogate, R: rune(c0), Width: 1}
	}

	return Item{Kind: ItemRune, R: rune(c0), Width: 1}
}

// AppendRune appends r to dst, splitting it into a UTF-16 surrogate pair
// when r is outside the BMP.
func AppendRune(dst []uint16, r rune) []uint16 {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		return append(dst, uint16(r1), uint16(r2))
	}
	return append(dst, uint16(r))
}

// AppendErrorByte appends the error-binary escape for b.
func AppendErrorByte(dst []uint16, b byte) []uint16 {
	return append(dst, errorbinary.Escape(b))
}

// AppendUTF8 decodes the UTF-8 bytes in b and appends each resulting
// rune to dst via AppendRune.
func AppendUTF8(dst []uint16, b []byte) []uint16 {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		dst = AppendRune(dst, r)
		b = b[size:]
	}
	return dst
}

// SurrogatePair returns the two UTF-16 code units r splits into when
// r is outside the BMP. Used by display-hex fallbacks that show raw
// code units instead of a "U+NNNNN" label.
func SurrogatePair(r rune) (hi, lo uint16) {
	r1, r2 := utf16.EncodeRune(r)
	return uint16(r1), uint16(r2)
}
