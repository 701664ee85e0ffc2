// Package ber decodes binary BER-TLV payloads as found in EMV smartcard
// data: multi-octet high tag numbers, short- and long-form lengths, and
// constructed values nested to a bounded depth. There is no checksum
// convention to verify, so the result carries no CRC or validation.
package ber

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tlvscope/tlvscope/tlv"
)

const (
	// MaxDepth bounds nesting against adversarial input.
	MaxDepth = 32

	// Defensive bounds on header octet counts, well past anything a
	// real EMV payload uses.
	maxTagOctets    = 8
	maxLengthOctets = 6
)

type grammar struct {
	data []byte
}

func (g grammar) MaxDepth() int { return MaxDepth }

func (g grammar) ReadField(off, end, depth int, parentTag string) (tlv.Field, error) {
	tag, constructed, tagSize, err := parseTag(g.data, off, end)
	if err != nil {
		return tlv.Field{}, err
	}
	length, lenSize, err := parseLength(g.data, off+tagSize, end)
	if err != nil {
		return tlv.Field{}, err
	}
	return tlv.Field{
		Tag:         tag,
		Length:      length,
		HeaderSize:  tagSize + lenSize,
		Constructed: constructed,
	}, nil
}

func (g grammar) MakeNode(f tlv.Field, off, depth int, parentTag string) *tlv.Node {
	valueStart := off + f.HeaderSize
	value := g.data[valueStart : valueStart+f.Length]
	n := &tlv.Node{
		Tag:         f.Tag,
		Class:       tlv.TagClass(g.data[off] >> 6),
		Constructed: f.Constructed,
		Length:      f.Length,
		Offset:      off,
		Depth:       depth,
		ValueHex:    hexUpper(value),
		RawHex:      hexUpper(g.data[off : valueStart+f.Length]),
	}
	if !f.Constructed {
		n.Value = value
		n.Preview = printablePreview(value)
	}
	return n
}

// parseTag decodes the tag octets at off. The top two bits of the first
// octet are the class and bit 5 the constructed flag; low bits of 0x1F
// switch to the high tag number form, 7 bits per continuation octet with
// the MSB marking more octets to follow.
func parseTag(data []byte, off, end int) (tag string, constructed bool, size int, err error) {
	first := data[off]
	constructed = first&0x20 != 0
	size = 1
	if first&0x1F == 0x1F {
		for {
			if off+size >= end {
				return "", false, 0, tlv.ErrFormat{Offset: off,
					Msg: "truncated high tag number form"}
			}
			b := data[off+size]
			size++
			if size > maxTagOctets {
				return "", false, 0, tlv.ErrFormat{Offset: off, Msg: fmt.Sprintf(
					"tag exceeds supported high tag number length of %d octets", maxTagOctets)}
			}
			if b&0x80 == 0 {
				break
			}
		}
	}
	return hexUpper(data[off : off+size]), constructed, size, nil
}

// parseLength decodes the length octets at off: short form when the top
// bit is clear, otherwise the low 7 bits count big-endian length octets.
// The reserved indefinite form (0x80) is rejected.
func parseLength(data []byte, off, end int) (length, size int, err error) {
	if off >= end {
		return 0, 0, tlv.ErrFormat{Offset: off, Msg: "truncated length"}
	}
	b := data[off]
	if b&0x80 == 0 {
		return int(b), 1, nil
	}
	count := int(b & 0x7F)
	if count == 0 {
		return 0, 0, tlv.ErrFormat{Offset: off,
			Msg: "Indefinite length encoding is not supported"}
	}
	if count > maxLengthOctets {
		return 0, 0, tlv.ErrFormat{Offset: off, Msg: fmt.Sprintf(
			"long form length of %d octets is too large", count)}
	}
	if off+1+count > end {
		return 0, 0, tlv.ErrFormat{Offset: off, Msg: "truncated long form length"}
	}
	for i := 0; i < count; i++ {
		length = length<<8 | int(data[off+1+i])
	}
	return length, 1 + count, nil
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// printablePreview guesses at a textual rendering of a primitive value:
// decode as UTF-8, collapse whitespace, and accept only if at least 75%
// of the characters are printable ASCII. An empty preview signals binary
// content to the consumer.
func printablePreview(value []byte) string {
	if len(value) == 0 || !utf8.Valid(value) {
		return ""
	}
	s := strings.Join(strings.Fields(string(value)), " ")
	if s == "" {
		return ""
	}
	printable, total := 0, 0
	for _, r := range s {
		total++
		if r >= 32 && r <= 126 {
			printable++
		}
	}
	if printable*4 < total*3 {
		return ""
	}
	return s
}

// Parse decodes a BER-TLV payload from raw bytes.
func Parse(data []byte) (*tlv.Result, error) {
	st := &tlv.State{}
	nodes, err := tlv.Walk(grammar{data}, 0, len(data), 0, "", st)
	if err != nil {
		return nil, err
	}
	return &tlv.Result{
		Format:  "ber-tlv",
		Nodes:   nodes,
		Rows:    st.Rows,
		Tree:    tlv.Project(nodes),
		Summary: tlv.Summarize(len(data), st.Rows, len(nodes)),
	}, nil
}
