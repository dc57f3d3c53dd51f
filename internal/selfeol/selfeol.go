// Package selfeol implements EOL byte-form lookup for every codec whose
// native character repertoire is wide enough to just ask "what would my
// own Encode produce for this Unicode scalar?" instead of hand-coding a
// byte table. UTF-8, CESU-8, UTF-16LE/BE, UTF-32LE/BE, and UTF-7 all
// qualify; ISO-2022-JP also uses this (its restricted JIS repertoire
// naturally makes NEL/LS/PS resolve to absent, which is the correct
// behavior, not a special case).
package selfeol

import "github.com/CrazyForks/sakura-2/codec"

const (
	runeNel = rune(0x0085)
	runeLs  = rune(0x2028)
	runePs  = rune(0x2029)
)

func runeFor(kind codec.EolKind) (rune, bool) {
	switch kind {
	case codec.EolLf:
		return '\n', true
	case codec.EolCr:
		return '\r', true
	case codec.EolNel:
		return runeNel, true
	case codec.EolLs:
		return runeLs, true
	case codec.EolPs:
		return runePs, true
	default:
		return 0, false
	}
}

// Bytes returns c's encoded byte form of kind, derived by calling c's
// own Encode on the Unicode scalar(s) that kind represents. Returns nil
// if c cannot represent them without loss, or for EolNone an empty
// (non-nil) slice.
func Bytes(c codec.Codec, kind codec.EolKind) []byte {
	if kind == codec.EolNone {
		return []byte{}
	}
	if kind == codec.EolCrLf {
		cr := Bytes(c, codec.EolCr)
		lf := Bytes(c, codec.EolLf)
		if cr == nil || lf == nil {
			return nil
		}
		out := make([]byte, 0, len(cr)+len(lf))
		out = append(out, cr...)
		out = append(out, lf...)
		return out
	}
	r, ok := runeFor(kind)
	if !ok {
		return nil
	}
	b, outcome := c.Encode(codec.Units{uint16(r)})
	if outcome == codec.LostSome {
		return nil
	}
	return b
}
