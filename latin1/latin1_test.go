package latin1

import (
	"bytes"
	"testing"

	"github.com/CrazyForks/sakura-2/codec"
)

func TestDecodeIsIdentity(t *testing.T) {
	c := New()
	b := []byte{0x00, 0x41, 0x80, 0xFF}
	u, outcome := c.Decode(b)
	if outcome.Lost() {
		t.Fatalf("Decode outcome = %s, want Ok", outcome)
	}
	want := codec.Units{0x00, 0x41, 0x80, 0xFF}
	if len(u) != len(want) {
		t.Fatalf("Decode len = %d, want %d", len(u), len(want))
	}
	for i := range want {
		if u[i] != want[i] {
			t.Errorf("Decode[%d] = %#x, want %#x", i, u[i], want[i])
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	c := New()
	b := []byte{0x00, 0x41, 0x80, 0xFF}
	u, _ := c.Decode(b)
	got, outcome := c.Encode(u)
	if outcome.Lost() {
		t.Fatalf("Encode outcome = %s, want Ok", outcome)
	}
	if !bytes.Equal(got, b) {
		t.Fatalf("Encode round trip = % X, want % X", got, b)
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	c := New()
	got, outcome := c.Encode(codec.Units{0x3042}) // Hiragana A, no Latin-1 image
	if !outcome.Lost() {
		t.Fatal("Encode(U+3042) outcome = Ok, want LostSome")
	}
	if string(got) != "?" {
		t.Fatalf("Encode(U+3042) = %q, want \"?\"", got)
	}
}

func TestBOMAndEOL(t *testing.T) {
	c := New()
	if bom := c.BOM(); bom != nil {
		t.Fatalf("BOM() = %v, want nil", bom)
	}
	if got := c.EOL(codec.EolCrLf); string(got) != "\r\n" {
		t.Fatalf("EOL(CrLf) = %q, want CRLF", got)
	}
	if got := c.EOL(codec.EolNel); got != nil {
		t.Fatalf("EOL(Nel) = %v, want nil", got)
	}
}

func TestDisplayHexLowercase(t *testing.T) {
	c := New()
	got := c.DisplayHex(codec.Units{0xE9}, codec.DisplayConfig{})
	if got != "e9" {
		t.Fatalf("DisplayHex(U+00E9) = %q, want e9", got)
	}
}
