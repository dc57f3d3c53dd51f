// Command charsetconv is a small file-based round-trip demo for the
// charset engine: it reads a file in a source encoding, converts it to
// a destination encoding, and writes the result next to the input.
// Modeled on the teacher's dicom_transcoder demo: a plain os.Args-driven
// CLI with no flag-parsing library, one run producing one labeled
// correlation id for its log lines.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/CrazyForks/sakura-2/charset"
	"github.com/CrazyForks/sakura-2/codec"
)

func main() {
	runID := uuid.New()
	fmt.Printf("charsetconv [%s]\n", runID)
	fmt.Println(strings.Repeat("-", 60))

	inputPath, fromName, toName := getArgs()
	if inputPath == "" {
		fmt.Println("no input file specified; exiting")
		waitForExit()
		return
	}

	fromID, ok := parseEncoding(fromName)
	if !ok {
		fmt.Printf("[%s] unrecognized source encoding %q\n", runID, fromName)
		waitForExit()
		return
	}
	toID, ok := parseEncoding(toName)
	if !ok {
		fmt.Printf("[%s] unrecognized destination encoding %q\n", runID, toName)
		waitForExit()
		return
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Printf("[%s] failed to read %s: %v\n", runID, inputPath, err)
		waitForExit()
		return
	}
	fmt.Printf("[%s] read %d bytes from %s as %s\n", runID, len(raw), inputPath, fromID)

	if _, err := codec.CreateOrError(fromID); err != nil {
		fmt.Printf("[%s] %v\n", runID, err)
		waitForExit()
		return
	}
	decodeResult, _ := charset.Decode(fromID, raw)
	if decodeResult.Outcome.Lost() {
		fmt.Printf("[%s] warning: some input could not be faithfully decoded\n", runID)
	}

	if _, err := codec.CreateOrError(toID); err != nil {
		fmt.Printf("[%s] %v\n", runID, err)
		waitForExit()
		return
	}
	encodeResult, _ := charset.Encode(toID, decodeResult.Units)
	out := encodeResult.Bytes
	if encodeResult.Outcome.Lost() {
		fmt.Printf("[%s] warning: some content has no image in %s\n", runID, toID)
	}

	if bom := charset.BOMOf(toID); len(bom) > 0 {
		out = append(bom, out...)
	}

	outputPath := inputPath + "." + strings.ToLower(toID.String())
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		fmt.Printf("[%s] failed to write %s: %v\n", runID, outputPath, err)
		waitForExit()
		return
	}

	fmt.Printf("[%s] wrote %d bytes to %s as %s\n", runID, len(out), outputPath, toID)
	if len(decodeResult.Units) > 0 {
		caret := decodeResult.Units[:1]
		fmt.Printf("[%s] display-hex at caret 0 in %s: %s\n", runID, fromID,
			charset.DisplayHex(fromID, caret, codec.DisplayConfig{}))
	}
	waitForExit()
}

func getArgs() (inputPath, from, to string) {
	if len(os.Args) >= 4 {
		return os.Args[1], os.Args[2], os.Args[3]
	}
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Input file path: ")
	inputPath, _ = reader.ReadString('\n')
	inputPath = strings.TrimSpace(strings.Trim(inputPath, "\"'"))

	fmt.Print("Source encoding (e.g. ShiftJis, Utf8, EucJp, Jis, Cp932): ")
	from, _ = reader.ReadString('\n')
	from = strings.TrimSpace(from)

	fmt.Print("Destination encoding: ")
	to, _ = reader.ReadString('\n')
	to = strings.TrimSpace(to)
	return inputPath, from, to
}

// parseEncoding resolves a human-typed encoding name to an EncodingID.
// "CpNNNN" (e.g. "Cp932") names a Windows code page by number; every
// other name matches one of the fixed-family constructors case
// insensitively.
func parseEncoding(name string) (codec.EncodingID, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(lower, "cp") {
		if n, err := strconv.ParseUint(lower[2:], 10, 16); err == nil {
			return codec.WindowsCodePage(uint16(n)), true
		}
	}
	switch lower {
	case "shiftjis", "sjis":
		return codec.ShiftJis(), true
	case "jis", "iso-2022-jp", "iso2022jp":
		return codec.Jis(), true
	case "eucjp", "euc-jp":
		return codec.EucJp(), true
	case "utf16le", "unicode16le":
		return codec.Unicode16Le(), true
	case "utf16be", "unicode16be":
		return codec.Unicode16Be(), true
	case "utf32le", "unicode32le":
		return codec.Unicode32Le(), true
	case "utf32be", "unicode32be":
		return codec.Unicode32Be(), true
	case "utf8":
		return codec.Utf8(), true
	case "utf7":
		return codec.Utf7(), true
	case "cesu8", "cesu-8":
		return codec.Cesu8(), true
	case "latin1", "iso-8859-1":
		return codec.Latin1(), true
	}
	return codec.EncodingID{}, false
}

func waitForExit() {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Print("Press Enter to exit...")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}
