package xtextcodec

import (
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func newSJISDecoder() transform.Transformer { return japanese.ShiftJIS.NewDecoder() }
func newSJISEncoder() transform.Transformer { return japanese.ShiftJIS.NewEncoder() }

func TestDecodeOneValidTwoByte(t *testing.T) {
	// Shift-JIS for U+3042 (HIRAGANA LETTER A) is 0x82 0xA0.
	r, ok, substituted := DecodeOne(newSJISDecoder, []byte{0x82, 0xA0})
	if !ok || substituted {
		t.Fatalf("DecodeOne(82 A0) ok=%v substituted=%v, want ok=true substituted=false", ok, substituted)
	}
	if r != 0x3042 {
		t.Fatalf("DecodeOne(82 A0) = %#x, want U+3042", r)
	}
}

func TestDecodeOneTableMiss(t *testing.T) {
	// 0xF0 0x40 is a structurally valid lead/trail pair shape with no
	// JIS X 0208 mapping; x/text substitutes U+FFFD for it.
	_, ok, substituted := DecodeOne(newSJISDecoder, []byte{0xF0, 0x40})
	if !ok || !substituted {
		t.Fatalf("DecodeOne(F0 40) ok=%v substituted=%v, want ok=true substituted=true", ok, substituted)
	}
}

func TestDecodeOneStructuralError(t *testing.T) {
	// A lone trail byte with no lead is not a valid two-byte candidate.
	_, ok, _ := DecodeOne(newSJISDecoder, []byte{0xA0, 0xA0})
	if ok {
		t.Fatalf("DecodeOne(A0 A0) ok = true, want false")
	}
}

func TestEncodeOneRoundTrip(t *testing.T) {
	b, ok := EncodeOne(newSJISEncoder, 0x3042)
	if !ok {
		t.Fatal("EncodeOne(U+3042) ok = false, want true")
	}
	if len(b) != 2 || b[0] != 0x82 || b[1] != 0xA0 {
		t.Fatalf("EncodeOne(U+3042) = % X, want 82 A0", b)
	}
}

func TestEncodeOneUnrepresentable(t *testing.T) {
	// U+0530 is unassigned and has no Shift-JIS image.
	_, ok := EncodeOne(newSJISEncoder, 0x0530)
	if ok {
		t.Fatal("EncodeOne(U+0530) ok = true, want false")
	}
}
