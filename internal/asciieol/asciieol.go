// Package asciieol implements the shared CRLF/LF/CR byte forms used by
// the non-Unicode ASCII-superset encodings (Shift-JIS, EUC-JP, Latin-1,
// Windows code pages). Those families have no byte form for NEL/LS/PS:
// they are not Unicode transformation formats and the original source
// never synthesizes one for them. ISO-2022-JP and UTF-7 derive their
// EOL forms through internal/selfeol instead.
package asciieol

import "github.com/CrazyForks/sakura-2/codec"

// Bytes returns the ASCII byte form of kind, or nil for a kind this
// family cannot represent.
func Bytes(kind codec.EolKind) []byte {
	switch kind {
	case codec.EolNone:
		return []byte{}
	case codec.EolCrLf:
		return []byte{'\r', '\n'}
	case codec.EolLf:
		return []byte{'\n'}
	case codec.EolCr:
		return []byte{'\r'}
	default:
		return nil
	}
}
