package qris

import (
	"fmt"
	"strings"
)

// field encodes one TLV field: tag, zero-padded two-digit length, value.
func field(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// BuildSample assembles a structurally valid, CRC-correct QRIS payload.
// It shares Checksum with VerifyCrc, so a sample that fails to round-trip
// indicates a defect in the checksum itself.
func BuildSample() string {
	var b strings.Builder
	b.WriteString(field("00", "01"))
	b.WriteString(field("01", "12"))
	b.WriteString(field("26",
		field("00", "ID.CO.EXAMPLE.WWW")+
			field("01", "936000140200001234")+
			field("03", "UMI")))
	b.WriteString(field("51",
		field("00", "ID.CO.QRIS.WWW")+
			field("02", "ID1234567890123")+
			field("03", "UMI")))
	b.WriteString(field("52", "5812"))
	b.WriteString(field("53", "360"))
	b.WriteString(field("58", "ID"))
	b.WriteString(field("59", "WARUNG KOPI NUSANTARA"))
	b.WriteString(field("60", "JAKARTA PUSAT"))
	b.WriteString(field("61", "10110"))
	b.WriteString(field("62",
		field("01", "INV-20240001")+
			field("07", "A01")))
	b.WriteString(crcMarker)

	payload := b.String()
	return payload + fmt.Sprintf("%04X", Checksum([]byte(payload)))
}
