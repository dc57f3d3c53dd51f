// Package errorbinary implements the lossless "error-binary" escape
// convention: a raw byte that could not be decoded is carried forward
// in the Unicode unit stream as a single unit in U+DC00..U+DCFF, so
// that re-encoding can restore the exact original byte instead of
// substituting a replacement character.
//
// The escape range overlaps the low half of the real UTF-16 low
// surrogate range. Callers must disambiguate using pairing state (see
// the units package): a low surrogate immediately preceded by a high
// surrogate is a genuine pair, never an escape.
package errorbinary

// Base is the first code unit of the escape range.
const Base uint16 = 0xDC00

// Escape returns the unit representing the single raw byte b.
func Escape(b byte) uint16 { return Base | uint16(b) }

// IsEscape reports whether u falls in the escape range. Callers must
// still confirm u is not the low half of a genuine surrogate pair
// before treating it as an escape.
func IsEscape(u uint16) bool { return u >= Base && u <= Base+0xFF }

// Byte extracts the raw byte carried by an escape unit. The caller must
// have already confirmed IsEscape(u).
func Byte(u uint16) byte { return byte(u - Base) }
