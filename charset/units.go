package charset

import (
	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/internal/units"
)

// ToUTF8String renders u as a Go string, one rune at a time, via
// internal/units.Next. A Units value is never converted to string
// implicitly (see the package doc) because it may carry error-binary
// escapes or bare surrogates that have no place in well-formed UTF-8
// text; this conversion is lossy in exactly that case: both an
// error-binary escape and a bare surrogate render as U+FFFD, the
// Unicode replacement character, since there is no way to recover the
// original byte or surrogate once it leaves Units form.
func ToUTF8String(u codec.Units) string {
	rs := ToRunes(u)
	return string(rs)
}

// ToRunes renders u as a []rune with the same lossy substitution as
// ToUTF8String (error-binary escapes and bare surrogates become
// U+FFFD).
func ToRunes(u codec.Units) []rune {
	out := make([]rune, 0, len(u))
	rest := []uint16(u)
	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemRune:
			out = append(out, it.R)
		default:
			out = append(out, '�')
		}
		rest = rest[it.Width:]
	}
	return out
}

// FromUTF8String converts s to Units. Every rune in a valid Go string
// is a well-formed Unicode scalar value, so this direction never loses
// information and never produces an error-binary escape or bare
// surrogate.
func FromUTF8String(s string) codec.Units {
	var u []uint16
	u = units.AppendUTF8(u, []byte(s))
	return codec.Units(u)
}

// FromRunes is FromUTF8String's []rune counterpart.
func FromRunes(rs []rune) codec.Units {
	var u []uint16
	for _, r := range rs {
		u = units.AppendRune(u, r)
	}
	return codec.Units(u)
}
