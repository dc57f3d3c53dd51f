// Package charset is the engine's single public entry point: Decode,
// Encode, BOMOf, EOLOf, DisplayHex, and MIMEHeaderDecode each resolve
// an EncodingID through the codec registry and delegate to the
// resolved Codec, so callers never import a concrete codec package
// directly.
//
// charset blank-imports every concrete codec package so their init
// registration runs, the same way the teacher's dicom_transcoder demo
// blank-imports every jpeg/jpeg2000/jpegls codec package it needs.
package charset

import (
	"github.com/CrazyForks/sakura-2/codec"
	"github.com/CrazyForks/sakura-2/mimeheader"

	_ "github.com/CrazyForks/sakura-2/codepage"
	_ "github.com/CrazyForks/sakura-2/eucjp"
	_ "github.com/CrazyForks/sakura-2/isojis"
	_ "github.com/CrazyForks/sakura-2/latin1"
	_ "github.com/CrazyForks/sakura-2/shiftjis"
	_ "github.com/CrazyForks/sakura-2/utf16codec"
	_ "github.com/CrazyForks/sakura-2/utf32codec"
	_ "github.com/CrazyForks/sakura-2/utf7"
	_ "github.com/CrazyForks/sakura-2/utf8codec"
)

// Logger receives diagnostic messages about encodings the engine falls
// back on or cannot resolve. The zero Option set installs a no-op
// Logger, so callers that do not care about diagnostics pay nothing.
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// Option configures package-level behavior.
type Option func(*options)

type options struct {
	logger Logger
}

var current = options{logger: noopLogger{}}

// WithLogger installs the Logger every subsequent package-level call
// reports unknown-encoding lookups through.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger{}
		}
		o.logger = l
	}
}

// Configure applies opts to the package's shared configuration. It is
// not safe to call concurrently with Decode/Encode/etc.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&current)
	}
}

func resolve(id codec.EncodingID) (codec.Codec, bool) {
	c, ok := codec.Create(id)
	if !ok {
		current.logger.Debugf("charset: no codec registered for %s", id)
	}
	return c, ok
}

// DecodeResult carries the full outcome of a Decode call, including a
// zero-copy view of the original input so a caller can report which
// bytes a partial or lossy decode came from without holding its own
// copy.
type DecodeResult struct {
	Outcome    codec.Outcome
	SourceLen  int
	SourceView []byte
	Units      codec.Units
}

// EncodeResult is DecodeResult's mirror for the encode direction.
type EncodeResult struct {
	Outcome    codec.Outcome
	SourceLen  int
	SourceView codec.Units
	Bytes      []byte
}

// Decode converts bytes in the named encoding to a Unicode unit
// sequence. ok is false only when id names a family with no registered
// codec; a registered codec's own Decode never fails catastrophically.
func Decode(id codec.EncodingID, b []byte) (result DecodeResult, ok bool) {
	c, ok := resolve(id)
	if !ok {
		return DecodeResult{}, false
	}
	u, o := c.Decode(b)
	return DecodeResult{Outcome: o, SourceLen: len(b), SourceView: b, Units: u}, true
}

// Encode converts a Unicode unit sequence to bytes in the named
// encoding.
func Encode(id codec.EncodingID, u codec.Units) (result EncodeResult, ok bool) {
	c, ok := resolve(id)
	if !ok {
		return EncodeResult{}, false
	}
	b, o := c.Encode(u)
	return EncodeResult{Outcome: o, SourceLen: len(u), SourceView: u, Bytes: b}, true
}

// BOMOf returns the byte-order mark the named encoding writes, or nil
// if it has none (or id is unknown).
func BOMOf(id codec.EncodingID) []byte {
	c, ok := resolve(id)
	if !ok {
		return nil
	}
	return c.BOM()
}

// EOLOf returns the byte form of kind in the named encoding, or nil if
// the encoding cannot represent it (or id is unknown).
func EOLOf(id codec.EncodingID, kind codec.EolKind) []byte {
	c, ok := resolve(id)
	if !ok {
		return nil
	}
	return c.EOL(kind)
}

// DisplayHex renders a caret-adjacent unit slice per cfg in the named
// encoding's own status-bar format, or "" if id is unknown.
func DisplayHex(id codec.EncodingID, u codec.Units, cfg codec.DisplayConfig) string {
	c, ok := resolve(id)
	if !ok {
		return ""
	}
	return c.DisplayHex(u, cfg)
}

// MIMEHeaderDecode decodes RFC 2047 encoded words in a message header
// that name id as their charset, splicing the decoded bytes back into
// b in place of the encoded word. decoded reports whether at least one
// word was actually decoded; words naming any other charset, or using
// an unsupported transfer encoding, pass through unchanged.
func MIMEHeaderDecode(id codec.EncodingID, b []byte) (out []byte, decoded bool) {
	return mimeheader.Decode(id, b)
}
