package mimeheader

import (
	"testing"

	"github.com/CrazyForks/sakura-2/codec"

	_ "github.com/CrazyForks/sakura-2/eucjp"
	_ "github.com/CrazyForks/sakura-2/isojis"
	_ "github.com/CrazyForks/sakura-2/shiftjis"
	_ "github.com/CrazyForks/sakura-2/utf8codec"
)

func TestResolveAliases(t *testing.T) {
	cases := map[string]codec.Family{
		"ISO-2022-JP": codec.FamilyJis,
		"shift_jis":   codec.FamilyShiftJis,
		"EUC-JP":      codec.FamilyEucJp,
		"utf-8":       codec.FamilyUtf8,
	}
	for name, want := range cases {
		id, ok := Resolve(name)
		if !ok || id.Family != want {
			t.Errorf("Resolve(%q) = %v, %v, want family %s", name, id, ok, want)
		}
	}
}

func TestResolveUnknownCharset(t *testing.T) {
	if _, ok := Resolve("x-made-up-charset"); ok {
		t.Fatal("Resolve(unknown) ok = true, want false")
	}
}

func TestDecodeUTF8Base64WordMatchingTarget(t *testing.T) {
	// "=?UTF-8?B?5LiW55WM?=" is the Base64 encoding of 世界 in UTF-8.
	got, decoded := Decode(codec.Utf8(), []byte("Subject: =?UTF-8?B?5LiW55WM?="))
	if !decoded {
		t.Fatal("Decode decoded = false, want true")
	}
	if string(got) != "Subject: 世界" {
		t.Fatalf("Decode = %q, want Subject: 世界", got)
	}
}

func TestDecodeQuotedPrintableWordMatchingTarget(t *testing.T) {
	got, decoded := Decode(codec.Utf8(), []byte("Subject: =?UTF-8?Q?Caf=C3=A9?="))
	if !decoded {
		t.Fatal("Decode decoded = false, want true")
	}
	if string(got) != "Subject: Café" {
		t.Fatalf("Decode = %q, want Subject: Café", got)
	}
}

func TestDecodeWordNamingDifferentCharsetPassesThroughVerbatim(t *testing.T) {
	raw := "=?ISO-2022-JP?B?GyRCJCIbKEI=?="
	got, decoded := Decode(codec.Utf8(), []byte(raw))
	if decoded {
		t.Fatal("Decode decoded = true, want false (charset mismatch)")
	}
	if string(got) != raw {
		t.Fatalf("Decode(mismatched charset) = %q, want verbatim %q", got, raw)
	}
}

func TestDecodePassesThroughPlainText(t *testing.T) {
	got, decoded := Decode(codec.Utf8(), []byte("no encoded words here"))
	if decoded {
		t.Fatal("Decode(plain) decoded = true, want false")
	}
	if string(got) != "no encoded words here" {
		t.Fatalf("Decode(plain) = %q", got)
	}
}

func TestDecodeUnknownCharsetPassesThroughRaw(t *testing.T) {
	raw := "=?x-unknown?B?QUJD?="
	got, decoded := Decode(codec.Utf8(), []byte(raw))
	if decoded {
		t.Fatal("Decode(unknown charset) decoded = true, want false")
	}
	if string(got) != raw {
		t.Fatalf("Decode(unknown charset) = %q, want verbatim %q", got, raw)
	}
}

func TestDecodeMalformedMissingTerminatorPassesThrough(t *testing.T) {
	raw := "=?UTF-8?B?5LiW55WM"
	got, decoded := Decode(codec.Utf8(), []byte(raw))
	if decoded {
		t.Fatal("Decode(no terminator) decoded = true, want false")
	}
	if string(got) != raw {
		t.Fatalf("Decode(no terminator) = %q, want verbatim %q", got, raw)
	}
}

func TestDecodeMultipleWordsOnlyMatchingTargetDecoded(t *testing.T) {
	raw := "=?UTF-8?B?5LiW55WM?= and =?ISO-2022-JP?B?GyRCJCIbKEI=?="
	got, decoded := Decode(codec.Utf8(), []byte(raw))
	if !decoded {
		t.Fatal("Decode decoded = false, want true")
	}
	want := "世界 and =?ISO-2022-JP?B?GyRCJCIbKEI=?="
	if string(got) != want {
		t.Fatalf("Decode(mixed) = %q, want %q", got, want)
	}
}
