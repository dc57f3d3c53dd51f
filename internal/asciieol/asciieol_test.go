package asciieol

import (
	"bytes"
	"testing"

	"github.com/CrazyForks/sakura-2/codec"
)

func TestBytesTable(t *testing.T) {
	cases := []struct {
		kind codec.EolKind
		want []byte
	}{
		{codec.EolNone, []byte{}},
		{codec.EolCrLf, []byte("\r\n")},
		{codec.EolLf, []byte("\n")},
		{codec.EolCr, []byte("\r")},
	}
	for _, c := range cases {
		if got := Bytes(c.kind); !bytes.Equal(got, c.want) {
			t.Errorf("Bytes(%s) = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestBytesUnrepresentableKinds(t *testing.T) {
	for _, kind := range []codec.EolKind{codec.EolNel, codec.EolLs, codec.EolPs} {
		if got := Bytes(kind); got != nil {
			t.Errorf("Bytes(%s) = %v, want nil", kind, got)
		}
	}
}
