package qris

import (
	"fmt"
	"strings"

	"github.com/tlvscope/tlvscope/tlv"
)

// crcMarker is the literal tag 63 header. The CRC value is by convention
// always 4 hex digits, so the header is a fixed string.
const crcMarker = "6304"

// Checksum computes CRC-16/CCITT-FALSE: polynomial 0x1021, initial value
// 0xFFFF, no final XOR, MSB first per byte.
func Checksum(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// VerifyCrc checks the trailing CRC of a raw QRIS payload. The checksum
// covers the character codes of the text up to and including the last
// "6304" marker; the 4 characters after the marker hold the stored value.
// A mismatch is reported, never raised: a corrupted payload must still be
// inspectable.
func VerifyCrc(text string) tlv.CrcResult {
	i := strings.LastIndex(text, crcMarker)
	if i < 0 {
		return tlv.CrcResult{}
	}
	expected := fmt.Sprintf("%04X", Checksum([]byte(text[:i+len(crcMarker)])))
	actual := ""
	if rest := text[i+len(crcMarker):]; len(rest) >= 4 {
		actual = rest[:4]
	}
	return tlv.CrcResult{
		Present:  true,
		Valid:    strings.EqualFold(expected, actual),
		Expected: expected,
		Actual:   actual,
	}
}
