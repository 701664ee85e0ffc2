package engine

import (
	"regexp"
	"strings"
)

// Format selects the payload grammar.
type Format string

const (
	FormatAuto      Format = "auto"
	FormatQris      Format = "qris"
	FormatBerHex    Format = "ber-hex"
	FormatBerBase64 Format = "ber-base64"
)

// qrisPrefix is the fixed Payload Format Indicator field that opens
// every QRIS payload: tag 00, length 02, value "01".
const qrisPrefix = "000201"

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// DetectFormat classifies raw input when the caller gives no format.
// Unrecognized text deliberately falls back to QRIS rather than erroring;
// the parser's own structural validation is the authority on whether the
// payload actually holds together.
func DetectFormat(input string) Format {
	text := strings.TrimSpace(input)
	if strings.HasPrefix(text, qrisPrefix) {
		return FormatQris
	}
	if base64Pattern.MatchString(text) && strings.ContainsAny(text, "+/=") {
		return FormatBerBase64
	}
	if isHexLike(text) {
		return FormatBerHex
	}
	return FormatQris
}

// isHexLike reports whether the input is pure hex once prefixes and
// separators are stripped. Length parity is left to the hex decoder.
func isHexLike(text string) bool {
	s := strings.ReplaceAll(text, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	s = hexSeparators.Replace(s)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
