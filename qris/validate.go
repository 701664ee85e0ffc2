package qris

import (
	"fmt"

	"github.com/tlvscope/tlvscope/tlv"
)

// Mandatory root tags per the QRIS merchant-presented specification.
var mandatoryRootTags = []string{"52", "53", "58", "59", "60", "63"}

// validate reports non-fatal findings over the decoded root node set.
// Nothing here aborts a parse.
func validate(roots []*tlv.Node) []tlv.Issue {
	byTag := make(map[string]*tlv.Node, len(roots))
	hasMerchantAccount := false
	for _, n := range roots {
		if _, ok := byTag[n.Tag]; !ok {
			byTag[n.Tag] = n
		}
		if num, ok := tagNum(n.Tag); ok && num >= 26 && num <= 51 {
			hasMerchantAccount = true
		}
	}

	var issues []tlv.Issue
	errf := func(format string, v ...any) {
		issues = append(issues, tlv.Issue{Level: tlv.IssueError, Message: fmt.Sprintf(format, v...)})
	}
	warnf := func(format string, v ...any) {
		issues = append(issues, tlv.Issue{Level: tlv.IssueWarn, Message: fmt.Sprintf(format, v...)})
	}

	for _, tag := range mandatoryRootTags {
		if byTag[tag] == nil {
			name, _ := TagName(tag, "")
			errf("Missing mandatory tag %s (%s)", tag, name)
		}
	}

	if poi := byTag["01"]; poi == nil {
		warnf("Missing tag 01 (Point of Initiation Method)")
	} else if v := string(poi.Value); v != "11" && v != "12" {
		errf("Tag 01 (Point of Initiation Method) must be \"11\" or \"12\", got %q", v)
	}

	if mcc := byTag["52"]; mcc != nil {
		if v := string(mcc.Value); mccNames[v] == "" {
			warnf("Tag 52 value %q is not a recognized merchant category code", v)
		}
	}
	if cur := byTag["53"]; cur != nil {
		if v := string(cur.Value); currencyNames[v] == "" {
			warnf("Tag 53 value %q is not a recognized ISO 4217 currency code", v)
		}
	}

	if !hasMerchantAccount {
		warnf("No merchant account information template (tags 26-51) present")
	}

	return issues
}
