package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Charset names the decoding that was applied.
type Charset string

const (
	CharsetUTF8BOM  Charset = "UTF-8 (BOM)"
	CharsetShiftJIS Charset = "Shift_JIS"
	CharsetUTF8     Charset = "UTF-8"
)

// sniffLimit is how many leading bytes are scanned for a Shift_JIS lead byte.
const sniffLimit = 1000

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Result is decoded text plus what was used to decode it.
type Result struct {
	Text    string
	Charset Charset
	// Lossy reports that undecodable sequences were replaced with U+FFFD.
	Lossy bool
}

// Decode converts raw statement bytes to text.
//
// Detection order:
//  1. UTF-8 BOM: stripped, remainder decoded as UTF-8
//  2. Any Shift_JIS double-byte lead byte (0x81-0x9F, 0xE0-0xEF) in the first
//     1000 bytes: whole buffer decoded as Shift_JIS (Windows-31J)
//  3. UTF-8
//
// This is a heuristic and never fails. UTF-8 without a BOM that contains
// multi-byte characters also matches step 2 and will be mis-decoded.
func Decode(data []byte) Result {
	if bytes.HasPrefix(data, bomUTF8) {
		return decodeUTF8(data[len(bomUTF8):], CharsetUTF8BOM)
	}

	if hasShiftJISLeadByte(data) {
		return decodeShiftJIS(data)
	}

	return decodeUTF8(data, CharsetUTF8)
}

func hasShiftJISLeadByte(data []byte) bool {
	n := min(len(data), sniffLimit)

	for _, b := range data[:n] {
		if (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xEF) {
			return true
		}
	}

	return false
}

func decodeShiftJIS(data []byte) Result {
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		res := decodeUTF8(data, CharsetShiftJIS)
		res.Lossy = true

		return res
	}

	text := string(out)

	return Result{
		Text:    text,
		Charset: CharsetShiftJIS,
		Lossy:   strings.ContainsRune(text, utf8.RuneError),
	}
}

func decodeUTF8(data []byte, cs Charset) Result {
	if utf8.Valid(data) {
		return Result{Text: string(data), Charset: cs}
	}

	return Result{
		Text:    strings.ToValidUTF8(string(data), string(utf8.RuneError)),
		Charset: cs,
		Lossy:   true,
	}
}

// Guess returns chardet's best charset guess for data, or "" if it has none.
// Used to explain lossy decodes in logs.
func Guess(data []byte) string {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil {
		return ""
	}

	return result.Charset
}
