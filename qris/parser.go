// Package qris decodes Indonesian EMV QR payment payloads: a TLV grammar
// with two-decimal-digit ASCII tags and lengths, a trailing
// CRC-16/CCITT-FALSE under tag 63, and a fixed set of mandatory fields.
package qris

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tlvscope/tlvscope/tlv"
)

// MaxDepth bounds nesting. The grammar itself only constructs at the
// root level, so this is purely a guard against pathological input.
const MaxDepth = 10

var ErrEmptyInput = errors.New("Input is empty.")

type grammar struct {
	text string
}

func (g grammar) MaxDepth() int { return MaxDepth }

func (g grammar) ReadField(off, end, depth int, parentTag string) (tlv.Field, error) {
	if end-off < 4 {
		return tlv.Field{}, tlv.ErrFormat{Offset: off, Msg: fmt.Sprintf(
			"Incomplete TLV header, only %d character(s) remain", end-off)}
	}
	tag := g.text[off : off+2]
	if !allDigits(tag) {
		return tlv.Field{}, tlv.ErrFormat{Offset: off, Msg: fmt.Sprintf(
			"Invalid tag %q, expected two decimal digits", tag)}
	}
	lenStr := g.text[off+2 : off+4]
	if !allDigits(lenStr) {
		return tlv.Field{}, tlv.ErrFormat{Offset: off + 2, Msg: fmt.Sprintf(
			"Invalid length %q, expected two decimal digits", lenStr)}
	}
	length, _ := strconv.Atoi(lenStr)
	return tlv.Field{
		Tag:        tag,
		Length:     length,
		HeaderSize: 4,
		// Sub-tags are always primitive: the grammar has no
		// constructed-bit concept below the root level.
		Constructed: depth == 0 && constructedRootTag(tag),
	}, nil
}

func (g grammar) MakeNode(f tlv.Field, off, depth int, parentTag string) *tlv.Node {
	n := &tlv.Node{
		Tag:         f.Tag,
		Constructed: f.Constructed,
		Length:      f.Length,
		Offset:      off,
		Depth:       depth,
	}
	if name, ok := TagName(f.Tag, parentTag); ok {
		n.Name = name
	}
	if !f.Constructed {
		value := g.text[off+f.HeaderSize : off+f.HeaderSize+f.Length]
		n.Value = []byte(value)
		n.Annotation = Annotate(f.Tag, parentTag, value)
	}
	return n
}

// constructedRootTag reports whether a root-level tag holds nested TLV
// content: merchant account templates 26-51, the additional data
// template 62, the language template 64, and proprietary templates 80-99.
func constructedRootTag(tag string) bool {
	n, ok := tagNum(tag)
	if !ok {
		return false
	}
	return (n >= 26 && n <= 51) || n == 62 || n == 64 || (n >= 80 && n <= 99)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Parse decodes a QRIS payload. Structural grammar violations abort with
// an error; CRC mismatch and missing mandatory tags are reported in the
// result instead so that damaged payloads stay inspectable.
func Parse(input string) (*tlv.Result, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyInput
	}

	crc := VerifyCrc(text)

	st := &tlv.State{}
	nodes, err := tlv.Walk(grammar{text}, 0, len(text), 0, "", st)
	if err != nil {
		return nil, err
	}

	return &tlv.Result{
		Format:     "qris",
		Nodes:      nodes,
		Rows:       st.Rows,
		Tree:       tlv.Project(nodes),
		Summary:    tlv.Summarize(len(text), st.Rows, len(nodes)),
		Crc:        &crc,
		Validation: validate(nodes),
	}, nil
}
