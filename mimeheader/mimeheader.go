// Package mimeheader implements RFC 2047 MIME encoded-word decoding for
// message headers: "=?charset?B?...?=" and "=?charset?Q?...?=" runs are
// located and, when the embedded charset names the caller's own target
// encoding, Base64- or Quoted-Printable-decoded and spliced back into the
// byte stream in place of the encoded word. An encoded word naming any
// other charset, or using neither B nor Q, or missing its closing "?=",
// passes through untouched.
//
// Grounded on the original source's CMimeHeader and on the
// registry-lookup pattern shared with charset.Decode.
package mimeheader

import (
	"strconv"
	"strings"

	"github.com/CrazyForks/sakura-2/codec"
)

// aliases maps a lowercased MIME charset token to the EncodingID it
// resolves to. Only the charsets named in the catalog this module
// targets are listed; anything else is left un-decoded.
var aliases = map[string]codec.EncodingID{
	"iso-2022-jp": codec.Jis(),
	"iso2022jp":   codec.Jis(),
	"shift_jis":   codec.ShiftJis(),
	"shift-jis":   codec.ShiftJis(),
	"sjis":        codec.ShiftJis(),
	"euc-jp":      codec.EucJp(),
	"eucjp":       codec.EucJp(),
	"utf-8":       codec.Utf8(),
	"utf8":        codec.Utf8(),
	"us-ascii":    codec.Latin1(),
	"iso-8859-1":  codec.Latin1(),
	"latin1":      codec.Latin1(),
}

// Resolve looks up the EncodingID a MIME charset token names, matching
// case-insensitively per RFC 2047 section 2.
func Resolve(charset string) (codec.EncodingID, bool) {
	id, ok := aliases[strings.ToLower(charset)]
	return id, ok
}

// Decode scans b for RFC 2047 encoded words naming target and splices
// their decoded bytes back into the output in place of the encoded
// word; every other encoded word (a different charset, an unsupported
// transfer encoding, or a malformed "=?...?=" run) passes through
// byte-for-byte. decoded reports whether at least one word was
// actually decoded; the caller is free to treat false as "nothing to
// do here".
func Decode(target codec.EncodingID, b []byte) (out []byte, decoded bool) {
	s := string(b)
	var sb strings.Builder
	i := 0
	for i < len(s) {
		start := strings.Index(s[i:], "=?")
		if start < 0 {
			sb.WriteString(s[i:])
			break
		}
		start += i
		sb.WriteString(s[i:start])
		next, payload, ok := decodeWordAt(target, s, start)
		sb.WriteString(payload)
		if ok {
			decoded = true
		}
		i = next
	}
	return []byte(sb.String()), decoded
}

// decodeWordAt attempts to parse and decode one encoded word starting
// at s[pos:] (which must begin with "=?"). next is always the position
// just past whatever was consumed — the whole "=?...?=" word whenever
// one parses (decoded or passed through), or a single "=?" when no
// complete word follows (so the scan always makes progress). payload
// is either the decoded bytes (ok) or the original matched text
// (!ok, pass-through).
func decodeWordAt(target codec.EncodingID, s string, pos int) (next int, payload string, ok bool) {
	rest := s[pos+2:]
	parts := strings.SplitN(rest, "?", 3)
	if len(parts) < 3 {
		return pos + 2, s[pos : pos+2], false
	}
	charsetTok := parts[0]
	encTok := parts[1]
	end := strings.Index(parts[2], "?=")
	if end < 0 {
		return pos + 2, s[pos : pos+2], false
	}
	body := parts[2][:end]
	matched := "=?" + charsetTok + "?" + encTok + "?" + body + "?="
	next = pos + len(matched)
	raw := matched

	id, known := Resolve(charsetTok)
	if !known || id != target {
		return next, raw, false
	}

	var decodedBytes []byte
	var malformed bool
	switch strings.ToUpper(encTok) {
	case "B":
		decodedBytes, malformed = decodeBase64(body)
	case "Q":
		decodedBytes, malformed = decodeQuotedPrintable(body)
	default:
		return next, raw, false
	}
	if malformed {
		return next, raw, false
	}
	return next, string(decodedBytes), true
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Rev [256]int8

func init() {
	for i := range base64Rev {
		base64Rev[i] = -1
	}
	for i := 0; i < len(base64Chars); i++ {
		base64Rev[base64Chars[i]] = int8(i)
	}
}

func decodeBase64(s string) ([]byte, bool) {
	var out []byte
	var bitBuf uint32
	var bitCount uint
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			break
		}
		v := base64Rev[c]
		if v < 0 {
			continue
		}
		bitBuf = bitBuf<<6 | uint32(v)
		bitCount += 6
		if bitCount >= 8 {
			bitCount -= 8
			out = append(out, byte(bitBuf>>bitCount))
		}
	}
	return out, false
}

func decodeQuotedPrintable(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_':
			out = append(out, ' ')
		case '=':
			if i+2 >= len(s) {
				return nil, true
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return nil, true
			}
			out = append(out, byte(v))
			i += 2
		default:
			out = append(out, s[i])
		}
	}
	return out, false
}
