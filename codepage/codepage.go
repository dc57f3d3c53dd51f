// Package codepage implements the generic Windows-code-page codec (C10)
// plus its catalog (C16). Single-byte pages are backed directly by
// golang.org/x/text/encoding/charmap's byte<->rune tables; multi-byte
// CJK pages are backed by golang.org/x/text's japanese/korean/
// simplifiedchinese/traditionalchinese packages, probed one candidate
// at a time like the shiftjis/eucjp codecs so undecodable sequences
// split into recoverable error-binary escapes. A code page number
// outside the catalog falls back to a byte-identity table, the same
// conservative approximation the original source falls back to when
// the OS cannot report a real conversion table for that page.
//
// Grounded on the original source's CCodePage and on
// other_examples/racingmars-go3270's generic byte<->rune codepage
// table shape.
package codepage

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/dispcode"
	"github.com/CrazyForks/sakura-2/internal/asciieol"
	"github.com/CrazyForks/sakura-2/internal/errorbinary"
	"github.com/CrazyForks/sakura-2/internal/units"
	"github.com/CrazyForks/sakura-2/internal/xtextcodec"
)

func init() {
	codec.Register(codec.FamilyWindowsCodePage, func(id codec.EncodingID) codec.Codec {
		return New(id.CodePage)
	})
}

// charmapPages maps a Windows code page number to a single-byte
// charmap.Charmap table.
var charmapPages = map[uint16]*charmap.Charmap{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	28591: charmap.ISO8859_1,
}

// multibytePages maps a Windows code page number to a stateless x/text
// multi-byte encoding.Encoding, probed two to four bytes at a time.
var multibytePages = map[uint16]encoding.Encoding{
	932:   japanese.ShiftJIS,
	949:   korean.EUCKR,
	936:   simplifiedchinese.GBK,
	54936: simplifiedchinese.GB18030,
	950:   traditionalchinese.Big5,
}

// Codec implements codec.Codec for one Windows code page.
type Codec struct {
	cp      uint16
	cm      *charmap.Charmap // non-nil for a single-byte page
	mb      encoding.Encoding // non-nil for a catalog multi-byte page
	isIdent bool              // true for the byte-identity fallback
}

// New returns the codec for Windows code page cp: a catalog entry when
// one is known, otherwise the byte-identity fallback.
func New(cp uint16) *Codec {
	if cm, ok := charmapPages[cp]; ok {
		return &Codec{cp: cp, cm: cm}
	}
	if mb, ok := multibytePages[cp]; ok {
		return &Codec{cp: cp, mb: mb}
	}
	return &Codec{cp: cp, isIdent: true}
}

var _ codec.Codec = (*Codec)(nil)

func (c *Codec) ID() codec.EncodingID { return codec.WindowsCodePage(c.cp) }

func (c *Codec) newMBDecoder() transform.Transformer { return c.mb.NewDecoder() }
func (c *Codec) newMBEncoder() transform.Transformer { return c.mb.NewEncoder() }

// Decode converts bytes to units per the page's table. Unmappable bytes
// (single-byte pages) or structurally-invalid/untabled sequences
// (multi-byte pages) become error-binary escapes; the identity fallback
// never fails.
func (c *Codec) Decode(b []byte) (codec.Units, codec.Outcome) {
	switch {
	case c.isIdent:
		out := make(codec.Units, len(b))
		for i, x := range b {
			out[i] = uint16(x)
		}
		return out, codec.Ok
	case c.cm != nil:
		return c.decodeCharmap(b)
	default:
		return c.decodeMultibyte(b)
	}
}

func (c *Codec) decodeCharmap(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	for _, x := range b {
		r := c.cm.DecodeByte(x)
		if r == 0xFFFD && x != 0 {
			out = units.AppendErrorByte(out, x)
			outcome = codec.LostSome
			continue
		}
		out = units.AppendRune(out, r)
	}
	return out, outcome
}

func (c *Codec) decodeMultibyte(b []byte) (codec.Units, codec.Outcome) {
	out := make(codec.Units, 0, len(b))
	outcome := codec.Ok
	pos := 0
	for pos < len(b) {
		c0 := b[pos]
		if c0 < 0x80 {
			out = append(out, uint16(c0))
			pos++
			continue
		}
		consumed := false
		for width := 4; width >= 2; width-- {
			if pos+width > len(b) {
				continue
			}
			r, ok, substituted := xtextcodec.DecodeOne(c.newMBDecoder, b[pos:pos+width])
			if ok && !substituted {
				out = units.AppendRune(out, r)
				pos += width
				consumed = true
				break
			}
		}
		if !consumed {
			out = append(out, errorbinary.Escape(c0))
			outcome = codec.LostSome
			pos++
		}
	}
	return out, outcome
}

// Encode converts units to bytes per the page's reverse table. A code
// point with no image becomes '?' with LostSome; error-binary escapes
// restore their original byte exactly.
func (c *Codec) Encode(u codec.Units) ([]byte, codec.Outcome) {
	out := make([]byte, 0, len(u))
	outcome := codec.Ok
	rest := []uint16(u)
	for len(rest) > 0 {
		it := units.Next(rest)
		switch it.Kind {
		case units.ItemErrorByte:
			out = append(out, it.Byte)
		case units.ItemRune:
			b, ok := c.encodeRune(it.R)
			if ok {
				out = append(out, b...)
			} else {
				out = append(out, '?')
				outcome = codec.LostSome
			}
		default: // bare surrogate
			out = append(out, '?')
			outcome = codec.LostSome
		}
		rest = rest[it.Width:]
	}
	return out, outcome
}

func (c *Codec) encodeRune(r rune) ([]byte, bool) {
	switch {
	case c.isIdent:
		if r < 0x100 {
			return []byte{byte(r)}, true
		}
		return nil, false
	case c.cm != nil:
		b, ok := c.cm.EncodeRune(r)
		if !ok {
			return nil, false
		}
		return []byte{b}, true
	default:
		return xtextcodec.EncodeOne(c.newMBEncoder, r)
	}
}

func (*Codec) BOM() []byte { return nil }

func (*Codec) EOL(kind codec.EolKind) []byte { return asciieol.Bytes(kind) }

func (c *Codec) DisplayHex(u codec.Units, cfg codec.DisplayConfig) string {
	opts := dispcode.Options{
		ShowCodepoint:     cfg.ShowCodepointInUtf8,
		ShowSupplementary: cfg.ShowCodepointForSupplementary,
	}
	return dispcode.Render(u, opts, c.encodeRune)
}
