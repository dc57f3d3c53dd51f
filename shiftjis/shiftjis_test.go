package shiftjis

import (
	"bytes"
	"testing"

	"github.com/CrazyForks/sakura-2/codec"
)

func TestDecodeASCII(t *testing.T) {
	u, outcome := New().Decode([]byte("Hello"))
	if outcome.Lost() {
		t.Fatal("Decode(ASCII) lost data")
	}
	if string(runesOf(u)) != "Hello" {
		t.Fatalf("Decode(ASCII) = %v, want Hello", u)
	}
}

func runesOf(u codec.Units) []rune {
	out := make([]rune, len(u))
	for i, c := range u {
		out[i] = rune(c)
	}
	return out
}

func TestDecodeHalfwidthKana(t *testing.T) {
	u, outcome := New().Decode([]byte{0xB1}) // half-width katakana A
	if outcome.Lost() {
		t.Fatal("Decode(halfwidth kana) lost data")
	}
	if len(u) != 1 || u[0] != 0xFF71 {
		t.Fatalf("Decode(0xB1) = %v, want [U+FF71]", u)
	}
}

func TestDecodeTwoByteKanji(t *testing.T) {
	// Shift-JIS for U+3042 (HIRAGANA LETTER A) is 0x82 0xA0.
	u, outcome := New().Decode([]byte{0x82, 0xA0})
	if outcome.Lost() {
		t.Fatal("Decode(82 A0) lost data")
	}
	if len(u) != 1 || u[0] != 0x3042 {
		t.Fatalf("Decode(82 A0) = %v, want [U+3042]", u)
	}
}

func TestDecodeInvalidLeadEscapes(t *testing.T) {
	u, outcome := New().Decode([]byte{0x80}) // not a valid lead byte
	if !outcome.Lost() {
		t.Fatal("Decode(0x80) outcome = Ok, want LostSome")
	}
	if len(u) != 1 || u[0] != 0xDC80 {
		t.Fatalf("Decode(0x80) = %v, want [U+DC80] (error-binary escape)", u)
	}
}

func TestDecodeLeadWithMissingTrail(t *testing.T) {
	u, outcome := New().Decode([]byte{0x82}) // lead byte, end of input
	if !outcome.Lost() {
		t.Fatal("Decode(lone lead) outcome = Ok, want LostSome")
	}
	if len(u) != 1 || u[0] != (0xDC00|0x82) {
		t.Fatalf("Decode(lone lead) = %v, want single escape", u)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New()
	b := []byte{0x82, 0xA0, 'A', 0xB1}
	u, _ := c.Decode(b)
	got, outcome := c.Encode(u)
	if outcome.Lost() {
		t.Fatal("Encode round trip lost data")
	}
	if !bytes.Equal(got, b) {
		t.Fatalf("Encode round trip = % X, want % X", got, b)
	}
}

func TestEncodeErrorBinaryRestoresOriginalByte(t *testing.T) {
	c := New()
	u, outcome := c.Decode([]byte{0x80, 0x40})
	if !outcome.Lost() {
		t.Fatal("Decode(80 40) outcome = Ok, want LostSome")
	}
	got, _ := c.Encode(u)
	if !bytes.Equal(got, []byte{0x80, 0x40}) {
		t.Fatalf("Encode(decode(80 40)) = % X, want 80 40", got)
	}
}

func TestDecodeNECSelectedIBMExtensionBytes(t *testing.T) {
	c := New()

	// 87 40 is a NEC row-13 symbol that decodes cleanly to U+2460 (CIRCLED
	// DIGIT ONE).
	u, outcome := c.Decode([]byte{0x87, 0x40})
	if outcome.Lost() {
		t.Fatal("Decode(87 40) lost data")
	}
	if len(u) != 1 || u[0] != 0x2460 {
		t.Fatalf("Decode(87 40) = %v, want [U+2460]", u)
	}

	// ED 40 is the NEC-selected IBM-extension duplicate of FA 40; x/text's
	// table does not resolve it, so both bytes split into independent
	// error-binary escapes rather than a silently-substituted character.
	u, outcome = c.Decode([]byte{0xED, 0x40})
	if !outcome.Lost() {
		t.Fatal("Decode(ED 40) outcome = Ok, want LostSome")
	}
	if len(u) != 2 || u[0] != (0xDC00|0xED) || u[1] != (0xDC00|0x40) {
		t.Fatalf("Decode(ED 40) = %v, want both bytes escaped", u)
	}

	// FA 40 is the canonical IBM-extension row and decodes to U+2170
	// (SMALL ROMAN NUMERAL ONE).
	u, outcome = c.Decode([]byte{0xFA, 0x40})
	if outcome.Lost() {
		t.Fatal("Decode(FA 40) lost data")
	}
	if len(u) != 1 || u[0] != 0x2170 {
		t.Fatalf("Decode(FA 40) = %v, want [U+2170]", u)
	}
}

func TestDecodeInvalidLeadTrailBoundaryTable(t *testing.T) {
	c := New()

	for _, lead := range []byte{0x80, 0xFD, 0xFE, 0xFF} {
		u, outcome := c.Decode([]byte{lead, 'x'})
		if !outcome.Lost() {
			t.Errorf("Decode(%#x 'x') outcome = Ok, want LostSome", lead)
			continue
		}
		if len(u) != 2 || u[0] != (0xDC00|uint16(lead)) || u[1] != uint16('x') {
			t.Errorf("Decode(%#x 'x') = %v, want lead escaped alone and 'x' reprocessed", lead, u)
		}
	}

	// An invalid trail is reprocessed as an independent byte on the next
	// iteration rather than consumed as part of the failed pair. 0x0A and
	// 0x7F are themselves plain single-byte characters once reprocessed;
	// 0xFD-0xFF are independently invalid leads and so escape again on
	// their own.
	plainTrails := map[byte]uint16{0x0A: 0x0A, 0x7F: 0x7F}
	escapedTrails := map[byte]bool{0xFD: true, 0xFE: true, 0xFF: true}
	for _, trail := range []byte{0x0A, 0x7F, 0xFD, 0xFE, 0xFF} {
		u, outcome := c.Decode([]byte{0x81, trail})
		if !outcome.Lost() {
			t.Errorf("Decode(81 %#x) outcome = Ok, want LostSome", trail)
			continue
		}
		if len(u) != 2 || u[0] != (0xDC00|0x81) {
			t.Errorf("Decode(81 %#x) = %v, want lead escaped alone first", trail, u)
			continue
		}
		if want, ok := plainTrails[trail]; ok {
			if u[1] != want {
				t.Errorf("Decode(81 %#x) = %v, want trail reprocessed as plain byte %#x", trail, u, want)
			}
		} else if escapedTrails[trail] {
			if u[1] != (0xDC00 | uint16(trail)) {
				t.Errorf("Decode(81 %#x) = %v, want trail reprocessed as its own escape", trail, u)
			}
		}
	}
}

func TestDisplayHexShowCodepoint(t *testing.T) {
	c := New()
	got := c.DisplayHex(codec.Units{0x3042}, codec.DisplayConfig{ShowCodepointInSjis: true})
	if got != "U+3042" {
		t.Fatalf("DisplayHex(show codepoint) = %q, want U+3042", got)
	}
}

func TestDisplayHexNativeBytes(t *testing.T) {
	c := New()
	got := c.DisplayHex(codec.Units{0x3042}, codec.DisplayConfig{})
	if got != "82A0" {
		t.Fatalf("DisplayHex(native) = %q, want 82A0", got)
	}
}
