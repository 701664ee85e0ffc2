package engine

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Separators commonly pasted along with hex dumps. Whitespace variants
// are included so multi-line dumps normalize cleanly.
var hexSeparators = strings.NewReplacer(
	" ", "", "\t", "", "\r", "", "\n", "",
	",", "", ":", "", ";", "", "|", "", "_", "", "-", "",
)

// SanitizeHex strips 0x prefixes and separators from pasted hex input
// and validates what remains. A byte needs two hex digits, so an odd
// character count is rejected.
func SanitizeHex(text string) (string, error) {
	s := strings.ReplaceAll(text, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	s = hexSeparators.Replace(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return "", fmt.Errorf("invalid hex character %q at position %d", c, i)
		}
	}
	if len(s)%2 != 0 {
		return "", fmt.Errorf("hex input has odd length (%d digits)", len(s))
	}
	return s, nil
}

// BytesFromHex decodes sanitized hex input. Empty input yields an empty
// slice; emptiness is the caller's concern.
func BytesFromHex(text string) ([]byte, error) {
	s, err := SanitizeHex(text)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(s)
}

// BytesFromBase64 decodes standard base64 input.
func BytesFromBase64(text string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 input: %w", err)
	}
	return b, nil
}

// BytesFromUTF8 returns the UTF-8 encoding of the text.
func BytesFromUTF8(text string) []byte {
	return []byte(text)
}

// BytesToHex renders bytes as canonical uppercase hex.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
