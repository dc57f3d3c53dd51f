// Package dispcode implements the shared status-bar display-hex
// algorithm every codec's Codec.DisplayHex delegates to. Only the
// "native bytes of one BMP character" step differs per encoding; every
// other rule (error-binary, bare surrogates, supplementary code points,
// IVS sequences) is identical across codecs and lives here once.
//
// This mirrors the original source's acknowledged display-hex
// limitations: an empty unit slice renders as "" rather than reading
// past the end, and an IVS base character followed by a combining mark
// that is not itself a variation selector is not specially recognized
// (only true IVS sequences, U+E0100..U+E01EF selectors, get the comma
// form).
package dispcode

import (
	"fmt"
	"strings"

	"github.com/CrazyForks/sakura-2/internal/units"
)

const (
	vsFirst = 0xE0100
	vsLast  = 0xE01EF
)

// Options mirrors the subset of codec.DisplayConfig relevant to one
// codec family, already resolved to that family's own flag.
type Options struct {
	// ShowCodepoint requests "U+NNNN" instead of native encoded bytes
	// for a single BMP character.
	ShowCodepoint bool
	// ShowSupplementary requests "U+NNNNN" instead of raw UTF-16 code
	// units for a character outside the BMP.
	ShowSupplementary bool
	// Lower requests lowercase hex digits (Latin-1 only).
	Lower bool
}

// NativeBytesFunc returns the encoded byte form of a single BMP rune in
// one codec's native encoding, with ok false if the encoding cannot
// represent it at all.
type NativeBytesFunc func(r rune) (b []byte, ok bool)

// Render implements the shared display-hex algorithm. u must be the
// unit slice starting at the caret; only the first logical item (and,
// for IVS detection, the one after it) is consulted.
func Render(u []uint16, opts Options, nativeBytes NativeBytesFunc) string {
	if len(u) == 0 {
		return ""
	}

	it := units.Next(u)
	switch it.Kind {
	case units.ItemErrorByte:
		if opts.Lower {
			return fmt.Sprintf("?%02x", it.Byte)
		}
		return fmt.Sprintf("?%02X", it.Byte)
	case units.ItemBareSurrogate:
		return fmt.Sprintf("%04X", uint16(it.R))
	}

	base := it.R
	isSupplementary := it.Width == 2
	rest := u[it.Width:]

	if len(rest) > 0 {
		next := units.Next(rest)
		if next.Kind == units.ItemRune && next.R >= vsFirst && next.R <= vsLast {
			baseLabel := renderBase(base, isSupplementary, opts, nativeBytes)
			if opts.ShowSupplementary {
				return baseLabel + ", " + fmt.Sprintf("U+%04X", next.R)
			}
			return baseLabel + ", " + rawUnitsHex(rest[:next.Width])
		}
	}

	return renderBase(base, isSupplementary, opts, nativeBytes)
}

func renderBase(r rune, isSupplementary bool, opts Options, nativeBytes NativeBytesFunc) string {
	if isSupplementary {
		if opts.ShowSupplementary {
			return fmt.Sprintf("U+%04X", r)
		}
		hi, lo := units.SurrogatePair(r)
		return fmt.Sprintf("%04X%04X", hi, lo)
	}
	if opts.ShowCodepoint {
		return fmt.Sprintf("U+%04X", r)
	}
	b, ok := nativeBytes(r)
	if !ok {
		b = []byte{'?'}
	}
	hex := hexBytes(b)
	if opts.Lower {
		return strings.ToLower(hex)
	}
	return hex
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

func rawUnitsHex(u []uint16) string {
	var sb strings.Builder
	for _, c := range u {
		fmt.Fprintf(&sb, "%04X", c)
	}
	return sb.String()
}
