// Package engine is the entry point of the TLV decoding engine: it
// normalizes textual input, detects or honors the requested format, and
// dispatches to the QRIS or BER parser. Each call is independent and
// allocates its own state, so the engine is safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tlvscope/tlvscope/ber"
	"github.com/tlvscope/tlvscope/qris"
	"github.com/tlvscope/tlvscope/tlv"
)

var ErrEmptyInput = qris.ErrEmptyInput

// Limits caps resource use per parse. The zero value imposes no cap,
// which suits local interactive use; anything fed untrusted input should
// set MaxInputLength.
type Limits struct {
	MaxInputLength int `json:"maxInputLength" yaml:"max_input_length"`
}

// Parse decodes a payload with no input cap. See ParseWithLimits.
func Parse(input string, format Format) (*tlv.Result, error) {
	return ParseWithLimits(input, format, Limits{})
}

// ParseWithLimits decodes a payload in the given format, detecting it
// first when the format is auto. Structural failures abort with an error
// and no partial result; QRIS CRC mismatches and validation findings are
// data in the result, never errors.
func ParseWithLimits(input string, format Format, limits Limits) (*tlv.Result, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyInput
	}
	if limits.MaxInputLength > 0 && len(text) > limits.MaxInputLength {
		return nil, fmt.Errorf("input length %d exceeds configured maximum %d",
			len(text), limits.MaxInputLength)
	}

	if format == FormatAuto || format == "" {
		format = DetectFormat(text)
	}

	switch format {
	case FormatQris:
		return qris.Parse(text)
	case FormatBerHex:
		data, err := BytesFromHex(text)
		if err != nil {
			return nil, err
		}
		return parseBer(data)
	case FormatBerBase64:
		data, err := BytesFromBase64(text)
		if err != nil {
			return nil, err
		}
		return parseBer(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func parseBer(data []byte) (*tlv.Result, error) {
	if len(data) == 0 {
		return nil, errors.New("Input is empty.")
	}
	return ber.Parse(data)
}
