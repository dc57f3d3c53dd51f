package utf8codec

import (
	"bytes"
	"testing"

	"github.com/CrazyForks/sakura-2/codec"
)

func TestUTF8DecodeEncodeRoundTrip(t *testing.T) {
	c := NewUTF8()
	b := []byte("Hello, 世界! 😀")
	u, outcome := c.Decode(b)
	if outcome.Lost() {
		t.Fatal("Decode lost data")
	}
	got, outcome2 := c.Encode(u)
	if outcome2.Lost() {
		t.Fatal("Encode lost data")
	}
	if !bytes.Equal(got, b) {
		t.Fatalf("round trip = %q, want %q", got, b)
	}
}

func TestUTF8DecodeInvalidByteEscapes(t *testing.T) {
	c := NewUTF8()
	u, outcome := c.Decode([]byte{0xFF})
	if !outcome.Lost() {
		t.Fatal("Decode(0xFF) outcome = Ok, want LostSome")
	}
	if len(u) != 1 || u[0] != (0xDC00|0xFF) {
		t.Fatalf("Decode(0xFF) = %v, want error-binary escape", u)
	}
}

func TestUTF8EncodeBareSurrogateSubstitutes(t *testing.T) {
	c := NewUTF8()
	got, outcome := c.Encode(codec.Units{0xD800})
	if !outcome.Lost() {
		t.Fatal("Encode(bare surrogate) outcome = Ok, want LostSome")
	}
	if string(got) != "?" {
		t.Fatalf("Encode(bare surrogate) = %q, want \"?\"", got)
	}
}

func TestUTF8BOM(t *testing.T) {
	if got := NewUTF8().BOM(); !bytes.Equal(got, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("BOM() = % X, want EF BB BF", got)
	}
}

func TestCESU8SupplementaryRoundTrip(t *testing.T) {
	c := NewCESU8()
	// U+1F600 (an emoji) split into a surrogate pair, each rendered as
	// its own 3-byte CESU-8 sequence.
	u := codec.Units{}
	hiLo := func(r rune) (uint16, uint16) {
		r -= 0x10000
		return uint16(0xD800 + (r >> 10)), uint16(0xDC00 + (r & 0x3FF))
	}
	hi, lo := hiLo(0x1F600)
	u = append(u, hi, lo)

	b, outcome := c.Encode(u)
	if outcome.Lost() {
		t.Fatal("CESU-8 encode lost data")
	}
	if len(b) != 6 {
		t.Fatalf("CESU-8 encode(supplementary) = % X, want 6 bytes (two 3-byte groups)", b)
	}

	got, outcome2 := c.Decode(b)
	if outcome2.Lost() {
		t.Fatal("CESU-8 decode lost data")
	}
	if len(got) != 2 || got[0] != hi || got[1] != lo {
		t.Fatalf("CESU-8 round trip = %v, want [%#x %#x]", got, hi, lo)
	}
}

func TestCESU8BOM(t *testing.T) {
	if got := NewCESU8().BOM(); !bytes.Equal(got, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("CESU-8 BOM() = % X, want EF BB BF", got)
	}
}

func TestCESU8PlainUTF8BytesStillDecode(t *testing.T) {
	c := NewCESU8()
	u, outcome := c.Decode([]byte("abc"))
	if outcome.Lost() {
		t.Fatal("CESU-8 decode(ascii) lost data")
	}
	if string([]rune{rune(u[0]), rune(u[1]), rune(u[2])}) != "abc" {
		t.Fatalf("CESU-8 decode(ascii) = %v", u)
	}
}
