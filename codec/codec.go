// Package codec defines the contract every character-encoding codec
// implements, plus the small value types (Units, Outcome, EolKind,
// EncodingID) that flow across that contract.
//
// codec itself knows nothing about Shift-JIS, EUC-JP, or any other
// concrete encoding. Concrete codecs live in their own packages and
// register themselves with Register (see registry.go) the same way the
// image codecs this package is modeled on register with their own
// transfer-syntax registry.
package codec

// Units is the in-memory text representation: an ordered sequence of
// 16-bit Unicode code units. A unit in U+DC00..U+DCFF that is not the
// low half of a real surrogate pair is an error-binary escape carrying
// one raw undecodable byte (see the errorbinary package).
type Units []uint16

// Outcome reports whether a conversion was fully faithful.
type Outcome int

const (
	// Ok means the output is a semantically faithful representation of
	// the input.
	Ok Outcome = iota
	// LostSome means at least one input sub-sequence could not be
	// faithfully converted; the output was still produced in full.
	LostSome
)

func (o Outcome) String() string {
	if o == LostSome {
		return "LostSome"
	}
	return "Ok"
}

// Lost reports whether o is LostSome.
func (o Outcome) Lost() bool { return o == LostSome }

// Merge combines outcomes from independent sub-conversions: the result
// is LostSome if any input is LostSome.
func Merge(outcomes ...Outcome) Outcome {
	for _, o := range outcomes {
		if o == LostSome {
			return LostSome
		}
	}
	return Ok
}

// EolKind enumerates the line-terminator variants the engine can look up
// a byte form for.
type EolKind int

const (
	EolNone EolKind = iota
	EolCrLf
	EolLf
	EolCr
	EolNel
	EolLs
	EolPs
)

func (k EolKind) String() string {
	switch k {
	case EolNone:
		return "None"
	case EolCrLf:
		return "CRLF"
	case EolLf:
		return "LF"
	case EolCr:
		return "CR"
	case EolNel:
		return "NEL"
	case EolLs:
		return "LS"
	case EolPs:
		return "PS"
	default:
		return "Unknown"
	}
}

// Family discriminates the closed set of encoding families named in the
// specification. WindowsCodePage is the one open-ended member; its
// concrete code page number lives in EncodingID.CodePage.
type Family int

const (
	FamilyShiftJis Family = iota
	FamilyJis
	FamilyEucJp
	FamilyUnicode16Le
	FamilyUnicode16Be
	FamilyUnicode32Le
	FamilyUnicode32Be
	FamilyUtf8
	FamilyUtf7
	FamilyCesu8
	FamilyLatin1
	FamilyWindowsCodePage
)

func (f Family) String() string {
	switch f {
	case FamilyShiftJis:
		return "ShiftJis"
	case FamilyJis:
		return "Jis"
	case FamilyEucJp:
		return "EucJp"
	case FamilyUnicode16Le:
		return "Unicode16Le"
	case FamilyUnicode16Be:
		return "Unicode16Be"
	case FamilyUnicode32Le:
		return "Unicode32Le"
	case FamilyUnicode32Be:
		return "Unicode32Be"
	case FamilyUtf8:
		return "Utf8"
	case FamilyUtf7:
		return "Utf7"
	case FamilyCesu8:
		return "Cesu8"
	case FamilyLatin1:
		return "Latin1"
	case FamilyWindowsCodePage:
		return "WindowsCodePage"
	default:
		return "Unknown"
	}
}

// EncodingID identifies one of the encodings the engine supports.
type EncodingID struct {
	Family   Family
	CodePage uint16 // meaningful only when Family == FamilyWindowsCodePage
}

func (id EncodingID) String() string {
	if id.Family == FamilyWindowsCodePage {
		return "WindowsCodePage(" + itoa(int(id.CodePage)) + ")"
	}
	return id.Family.String()
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ShiftJis, Jis, EucJp, ... construct the EncodingID for each fixed
// family. WindowsCodePage carries its code page number explicitly.
func ShiftJis() EncodingID      { return EncodingID{Family: FamilyShiftJis} }
func Jis() EncodingID           { return EncodingID{Family: FamilyJis} }
func EucJp() EncodingID         { return EncodingID{Family: FamilyEucJp} }
func Unicode16Le() EncodingID   { return EncodingID{Family: FamilyUnicode16Le} }
func Unicode16Be() EncodingID   { return EncodingID{Family: FamilyUnicode16Be} }
func Unicode32Le() EncodingID   { return EncodingID{Family: FamilyUnicode32Le} }
func Unicode32Be() EncodingID   { return EncodingID{Family: FamilyUnicode32Be} }
func Utf8() EncodingID          { return EncodingID{Family: FamilyUtf8} }
func Utf7() EncodingID          { return EncodingID{Family: FamilyUtf7} }
func Cesu8() EncodingID         { return EncodingID{Family: FamilyCesu8} }
func Latin1() EncodingID        { return EncodingID{Family: FamilyLatin1} }
func WindowsCodePage(cp uint16) EncodingID {
	return EncodingID{Family: FamilyWindowsCodePage, CodePage: cp}
}

// DisplayConfig mirrors the status bar's display options for
// Codec.DisplayHex.
type DisplayConfig struct {
	ShowCodepointInSjis           bool
	ShowCodepointInJis            bool
	ShowCodepointInEuc            bool
	ShowCodepointInUtf8           bool
	ShowCodepointForSupplementary bool
}

// Codec is the uniform contract every encoding implements. A Codec is a
// pure function of its input and its own identity: no instance state
// persists across calls, so a single shared instance may be reused
// freely across goroutines.
type Codec interface {
	// ID reports which encoding this codec instance was created for.
	ID() EncodingID

	// Decode converts bytes to a Unicode unit sequence. Never fails
	// catastrophically: malformed sub-sequences are represented via
	// error-binary escapes or '?' substitution per the codec's rules.
	Decode(b []byte) (Units, Outcome)

	// Encode converts a Unicode unit sequence to bytes, restoring
	// error-binary escapes verbatim when this codec honors that
	// convention.
	Encode(u Units) ([]byte, Outcome)

	// BOM returns the byte-order mark this codec writes, or nil if the
	// encoding has no BOM concept.
	BOM() []byte

	// EOL returns the byte form of the given line-terminator kind in
	// this encoding, or nil if this codec has no representation for it.
	EOL(kind EolKind) []byte

	// DisplayHex renders a caret-adjacent unit slice as a short
	// hexadecimal label for the status bar, per cfg.
	DisplayHex(u Units, cfg DisplayConfig) string
}
