package dispcode

import (
	"testing"

	"github.com/CrazyForks/sakura-2/internal/errorbinary"
	"github.com/CrazyForks/sakura-2/internal/units"
)

func nativeAsUTF8Like(r rune) ([]byte, bool) {
	if r > 0xFF {
		return nil, false
	}
	return []byte{byte(r)}, true
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, Options{}, nativeAsUTF8Like); got != "" {
		t.Fatalf("Render(nil) = %q, want empty", got)
	}
}

func TestRenderErrorByte(t *testing.T) {
	u := []uint16{errorbinary.Escape(0x80)}
	if got := Render(u, Options{}, nativeAsUTF8Like); got != "?80" {
		t.Fatalf("Render(error byte) = %q, want ?80", got)
	}
}

func TestRenderErrorByteLower(t *testing.T) {
	u := []uint16{errorbinary.Escape(0x80)}
	if got := Render(u, Options{Lower: true}, nativeAsUTF8Like); got != "?80" {
		t.Fatalf("Render(error byte, lower) = %q, want ?80", got)
	}
	u2 := []uint16{errorbinary.Escape(0xAB)}
	if got := Render(u2, Options{Lower: true}, nativeAsUTF8Like); got != "?ab" {
		t.Fatalf("Render(error byte 0xAB, lower) = %q, want ?ab", got)
	}
}

func TestRenderBareSurrogate(t *testing.T) {
	u := []uint16{0xD800}
	if got := Render(u, Options{}, nativeAsUTF8Like); got != "D800" {
		t.Fatalf("Render(bare surrogate) = %q, want D800", got)
	}
}

func TestRenderShowCodepoint(t *testing.T) {
	u := []uint16{0x3042}
	if got := Render(u, Options{ShowCodepoint: true}, nativeAsUTF8Like); got != "U+3042" {
		t.Fatalf("Render(show codepoint) = %q, want U+3042", got)
	}
}

func TestRenderNativeBytes(t *testing.T) {
	u := []uint16{0x0041}
	if got := Render(u, Options{}, nativeAsUTF8Like); got != "41" {
		t.Fatalf("Render(native bytes) = %q, want 41", got)
	}
}

func TestRenderNativeBytesUnrepresentable(t *testing.T) {
	u := []uint16{0x3042} // out of nativeAsUTF8Like's range
	if got := Render(u, Options{}, nativeAsUTF8Like); got != "3F" {
		t.Fatalf("Render(unrepresentable) = %q, want 3F ('?')", got)
	}
}

func TestRenderSupplementaryRawUnits(t *testing.T) {
	hi, lo := units.SurrogatePair(0x20B9F)
	u := []uint16{hi, lo}
	want := "D842DF9F" // hi=U+D842 lo=U+DF9F for U+20B9F
	if got := Render(u, Options{}, nativeAsUTF8Like); got != want {
		t.Fatalf("Render(supplementary raw) = %q, want %q", got, want)
	}
}

func TestRenderSupplementaryShowCodepoint(t *testing.T) {
	hi, lo := units.SurrogatePair(0x20B9F)
	u := []uint16{hi, lo}
	if got := Render(u, Options{ShowSupplementary: true}, nativeAsUTF8Like); got != "U+20B9F" {
		t.Fatalf("Render(supplementary, show) = %q, want U+20B9F", got)
	}
}

func TestRenderIVSRawUnits(t *testing.T) {
	// U+845B followed by a variation selector (U+E0100).
	u := []uint16{0x845B, 0xDB40, 0xDD00} // U+E0100 as a surrogate pair
	got := Render(u, Options{}, nativeAsUTF8Like)
	want := "3F, DB40DD00" // base not representable by nativeAsUTF8Like -> '?'
	if got != want {
		t.Fatalf("Render(IVS) = %q, want %q", got, want)
	}
}

func TestRenderIVSShowSupplementary(t *testing.T) {
	u := []uint16{0x0041, 0xDB40, 0xDD00}
	got := Render(u, Options{ShowSupplementary: true}, nativeAsUTF8Like)
	want := "41, U+E0100"
	if got != want {
		t.Fatalf("Render(IVS, show supplementary) = %q, want %q", got, want)
	}
}
