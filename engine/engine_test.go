package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlvscope/tlvscope/engine"
	"github.com/tlvscope/tlvscope/qris"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		input string
		want  engine.Format
	}{
		{"000201010211...", engine.FormatQris},
		{"WgMRIjM=", engine.FormatBerBase64},
		{"6F0E8407A0000000031010", engine.FormatBerHex},
		{"0x6F 0E 84", engine.FormatBerHex},
		{"hello world", engine.FormatQris},
		{"", engine.FormatQris},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, engine.DetectFormat(tc.input), "input %q", tc.input)
	}
}

func TestParseDispatchQris(t *testing.T) {
	res, err := engine.Parse(qris.BuildSample(), engine.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, "qris", res.Format)
	require.True(t, res.Crc.Present)
	require.True(t, res.Crc.Valid)
}

func TestParseDispatchBerBase64(t *testing.T) {
	// WgMRIjM= is 5A 03 11 22 33.
	res, err := engine.Parse("WgMRIjM=", engine.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, "ber-tlv", res.Format)
	require.Len(t, res.Nodes, 1)
	require.Equal(t, "5A", res.Nodes[0].Tag)
	require.Equal(t, "112233", res.Nodes[0].ValueHex)
}

func TestParseDispatchBerHex(t *testing.T) {
	res, err := engine.Parse("6F 0E 84 07 A0 00 00 00 03 10 10 A5 03 88 01 02", engine.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, "ber-tlv", res.Format)
	require.Equal(t, "6F", res.Nodes[0].Tag)
}

func TestParseOddLengthHex(t *testing.T) {
	_, err := engine.Parse("ABC", engine.FormatBerHex)
	require.Error(t, err)
	require.ErrorContains(t, err, "odd length")
}

func TestParseInvalidBase64(t *testing.T) {
	_, err := engine.Parse("!!!not-base64!!!", engine.FormatBerBase64)
	require.Error(t, err)
	require.ErrorContains(t, err, "base64")
}

func TestParseEmptyInput(t *testing.T) {
	_, err := engine.Parse("   \n", engine.FormatAuto)
	require.ErrorIs(t, err, engine.ErrEmptyInput)

	// Input that normalizes to zero bytes is also empty.
	_, err = engine.Parse("0x", engine.FormatBerHex)
	require.Error(t, err)
	require.ErrorContains(t, err, "empty")
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := engine.Parse("000201", engine.Format("der"))
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown format")
}

func TestParseIdempotence(t *testing.T) {
	sample := qris.BuildSample()

	first, err := engine.Parse(sample, engine.FormatQris)
	require.NoError(t, err)
	second, err := engine.Parse(sample, engine.FormatQris)
	require.NoError(t, err)

	require.Equal(t, first.Rows, second.Rows)
	require.Equal(t, first.Summary, second.Summary)
	require.Equal(t, first.Tree, second.Tree)
}

func TestParseLimit(t *testing.T) {
	sample := qris.BuildSample()

	_, err := engine.ParseWithLimits(sample, engine.FormatQris,
		engine.Limits{MaxInputLength: 10})
	require.Error(t, err)
	require.ErrorContains(t, err, "exceeds configured maximum")

	// A generous limit changes nothing.
	res, err := engine.ParseWithLimits(sample, engine.FormatQris,
		engine.Limits{MaxInputLength: len(sample)})
	require.NoError(t, err)
	require.True(t, res.Crc.Valid)
}

func TestSanitizeHex(t *testing.T) {
	s, err := engine.SanitizeHex("0x6F,0E:84;07|A0_00-00 00\t03 10 10")
	require.NoError(t, err)
	require.Equal(t, "6F0E8407A0000000031010", s)

	_, err = engine.SanitizeHex("6F0")
	require.ErrorContains(t, err, "odd length")

	_, err = engine.SanitizeHex("6FZZ")
	require.ErrorContains(t, err, "invalid hex character")
}

func TestBytesRoundTrip(t *testing.T) {
	b, err := engine.BytesFromHex("6f0e")
	require.NoError(t, err)
	require.Equal(t, []byte{0x6F, 0x0E}, b)
	require.Equal(t, "6F0E", engine.BytesToHex(b))

	require.Equal(t, []byte("abc"), engine.BytesFromUTF8("abc"))

	b, err = engine.BytesFromHex("")
	require.NoError(t, err)
	require.Empty(t, b)
}
