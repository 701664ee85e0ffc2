package qris_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlvscope/tlvscope/qris"
	"github.com/tlvscope/tlvscope/tlv"
)

// f encodes one decimal TLV field for building test payloads.
func f(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

func TestSampleRoundTrip(t *testing.T) {
	res, err := qris.Parse(qris.BuildSample())
	require.NoError(t, err)

	require.True(t, res.Crc.Present)
	require.True(t, res.Crc.Valid)
	require.Equal(t, res.Crc.Expected, res.Crc.Actual)
	require.Empty(t, res.Validation)
	require.Equal(t, "qris", res.Format)
}

func TestCrcTamperDetection(t *testing.T) {
	sample := qris.BuildSample()
	bogus := "0000"
	if sample[len(sample)-4:] == bogus {
		bogus = "FFFF"
	}

	res, err := qris.Parse(sample[:len(sample)-4] + bogus)
	require.NoError(t, err)
	require.True(t, res.Crc.Present)
	require.False(t, res.Crc.Valid)
	require.Equal(t, bogus, res.Crc.Actual)
	require.NotEqual(t, res.Crc.Expected, res.Crc.Actual)
}

func TestDepthAccounting(t *testing.T) {
	payload := f("00", "01") + f("26", f("00", "ID.TEST")+f("01", "123"))

	res, err := qris.Parse(payload)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 2)

	merchant := res.Nodes[1]
	require.Equal(t, "26", merchant.Tag)
	require.True(t, merchant.Constructed)
	require.Equal(t, 0, merchant.Depth)
	require.Len(t, merchant.Children, 2)
	for _, child := range merchant.Children {
		require.Equal(t, merchant.Depth+1, child.Depth)
		require.False(t, child.Constructed)
	}
	require.Equal(t, "ID.TEST", string(merchant.Children[0].Value))
	require.Equal(t, "Globally Unique Identifier", merchant.Children[0].Name)
	require.Equal(t, 1, res.Summary.MaxDepth)
}

func TestSubTagsAlwaysPrimitive(t *testing.T) {
	// Tag 26 inside the additional data template must not recurse even
	// though 26 is a template tag at the root.
	payload := f("00", "01") + f("62", f("26", "0099"))

	res, err := qris.Parse(payload)
	require.NoError(t, err)
	sub := res.Nodes[1].Children[0]
	require.Equal(t, "26", sub.Tag)
	require.False(t, sub.Constructed)
	require.Empty(t, sub.Children)
	require.Equal(t, "0099", string(sub.Value))
}

func TestRowNumberingPreOrder(t *testing.T) {
	payload := f("00", "01") +
		f("26", f("00", "AA")+f("01", "BB")) +
		f("62", f("01", "X"))

	res, err := qris.Parse(payload)
	require.NoError(t, err)
	require.Len(t, res.Rows, 6)
	for i, row := range res.Rows {
		require.Equal(t, i+1, row.Index)
	}

	// Parent before children, document order.
	tags := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		tags = append(tags, row.Tag)
	}
	require.Equal(t, []string{"00", "26", "00", "01", "62", "01"}, tags)
}

func TestAnnotations(t *testing.T) {
	res, err := qris.Parse(qris.BuildSample())
	require.NoError(t, err)

	byTag := map[string]tlv.FlatRow{}
	for _, row := range res.Rows {
		if row.Depth == 0 {
			byTag[row.Tag] = row
		}
	}
	require.Equal(t, "Dynamic", byTag["01"].Note)
	require.Equal(t, "IDR", byTag["53"].Note)
	require.Equal(t, "Eating Places and Restaurants", byTag["52"].Note)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		match   string
	}{
		{"non-digit tag", "AB0201", "Invalid tag"},
		{"non-digit length", "00XX01", "Invalid length"},
		{"incomplete header", "000", "Incomplete TLV"},
		{"length past region", "0099AB", "exceeds available input length"},
		{"nested length past region", f("26", "0005AB"), "exceeds available input length"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := qris.Parse(tc.payload)
			require.Error(t, err)
			require.ErrorContains(t, err, tc.match)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := qris.Parse("   ")
	require.ErrorIs(t, err, qris.ErrEmptyInput)
}

func TestValidationMissingMandatory(t *testing.T) {
	res, err := qris.Parse("000201")
	require.NoError(t, err)

	var errs, warns []string
	for _, issue := range res.Validation {
		switch issue.Level {
		case tlv.IssueError:
			errs = append(errs, issue.Message)
		case tlv.IssueWarn:
			warns = append(warns, issue.Message)
		}
	}
	require.Len(t, errs, 6)
	for _, tag := range []string{"52", "53", "58", "59", "60", "63"} {
		require.Contains(t, fmt.Sprint(errs), "tag "+tag)
	}
	require.Contains(t, fmt.Sprint(warns), "Point of Initiation Method")
	require.Contains(t, fmt.Sprint(warns), "merchant account")
}

func TestValidationPointOfInitiation(t *testing.T) {
	res, err := qris.Parse(f("00", "01") + f("01", "99"))
	require.NoError(t, err)

	found := false
	for _, issue := range res.Validation {
		if issue.Level == tlv.IssueError &&
			strings.Contains(issue.Message, `"11"`) &&
			strings.Contains(issue.Message, `"12"`) {
			found = true
		}
	}
	require.True(t, found, "expected an error naming \"11\" or \"12\"")
}

func TestValidationUnknownCodes(t *testing.T) {
	res, err := qris.Parse(f("52", "9998") + f("53", "999"))
	require.NoError(t, err)

	joined := fmt.Sprint(res.Validation)
	require.Contains(t, joined, "not a recognized merchant category code")
	require.Contains(t, joined, "not a recognized ISO 4217 currency code")
}

func TestTagNameParentResolution(t *testing.T) {
	cases := []struct {
		tag, parent, want string
	}{
		{"01", "26", "PAN / Merchant Identifier"},
		{"01", "51", "PAN / Merchant Identifier"},
		{"01", "62", "Bill Number"},
		{"01", "64", "Merchant Name - Alternate Language"},
		{"00", "", "Payload Format Indicator"},
		{"30", "", "Merchant Account Information"},
		{"85", "", "Proprietary Template"},
	}
	for _, tc := range cases {
		name, ok := qris.TagName(tc.tag, tc.parent)
		require.True(t, ok, "%s under %q", tc.tag, tc.parent)
		require.Equal(t, tc.want, name)
	}

	// Sub-tags under a non-template parent are unknown.
	_, ok := qris.TagName("01", "00")
	require.False(t, ok)
}
