package qris

import "strconv"

// Root tag names per the EMVCo merchant-presented QR layout. Tags not
// listed here resolve through the range rules in TagName.
var rootTagNames = map[string]string{
	"00": "Payload Format Indicator",
	"01": "Point of Initiation Method",
	"52": "Merchant Category Code",
	"53": "Transaction Currency",
	"54": "Transaction Amount",
	"55": "Tip or Convenience Indicator",
	"56": "Value of Convenience Fee Fixed",
	"57": "Value of Convenience Fee Percentage",
	"58": "Country Code",
	"59": "Merchant Name",
	"60": "Merchant City",
	"61": "Postal Code",
	"62": "Additional Data Field Template",
	"63": "CRC",
	"64": "Merchant Information - Language Template",
}

// Sub-tags of merchant account templates (root tags 26-51).
var merchantSubTagNames = map[string]string{
	"00": "Globally Unique Identifier",
	"01": "PAN / Merchant Identifier",
	"02": "Merchant ID",
	"03": "Merchant Criteria",
}

// Sub-tags of the additional data field template (root tag 62).
var additionalSubTagNames = map[string]string{
	"01": "Bill Number",
	"02": "Mobile Number",
	"03": "Store Label",
	"04": "Loyalty Number",
	"05": "Reference Label",
	"06": "Customer Label",
	"07": "Terminal Label",
	"08": "Purpose of Transaction",
	"09": "Additional Consumer Data Request",
}

// Sub-tags of the language template (root tag 64).
var languageSubTagNames = map[string]string{
	"00": "Language Preference",
	"01": "Merchant Name - Alternate Language",
	"02": "Merchant City - Alternate Language",
}

// ISO 4217 numeric currency codes seen in QRIS payloads.
var currencyNames = map[string]string{
	"036": "AUD",
	"156": "CNY",
	"344": "HKD",
	"356": "INR",
	"360": "IDR",
	"392": "JPY",
	"410": "KRW",
	"458": "MYR",
	"608": "PHP",
	"702": "SGD",
	"704": "VND",
	"764": "THB",
	"826": "GBP",
	"840": "USD",
	"978": "EUR",
}

// A working subset of ISO 18245 merchant category codes. Unknown codes
// only downgrade validation to a warning, never a failure.
var mccNames = map[string]string{
	"0742": "Veterinary Services",
	"0763": "Agricultural Cooperatives",
	"4111": "Local Commuter Transport",
	"4121": "Taxicabs and Limousines",
	"4814": "Telecommunication Services",
	"4899": "Cable and Pay Television",
	"5045": "Computers and Peripherals",
	"5311": "Department Stores",
	"5411": "Grocery Stores and Supermarkets",
	"5462": "Bakeries",
	"5499": "Miscellaneous Food Stores",
	"5541": "Service Stations",
	"5611": "Men's Clothing Stores",
	"5651": "Family Clothing Stores",
	"5732": "Electronics Stores",
	"5812": "Eating Places and Restaurants",
	"5814": "Fast Food Restaurants",
	"5912": "Drug Stores and Pharmacies",
	"5942": "Book Stores",
	"5999": "Miscellaneous Retail",
	"6011": "Automated Cash Disbursements",
	"7011": "Lodging",
	"7230": "Beauty and Barber Shops",
	"7372": "Computer Programming Services",
	"7399": "Business Services",
	"8011": "Doctors",
	"8220": "Colleges and Universities",
	"8398": "Charitable Organizations",
	"9399": "Government Services",
}

func tagNum(tag string) (int, bool) {
	if len(tag) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(tag)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TagName resolves the display name of a tag. Sub-tag resolution is
// keyed on the enclosing tag: merchant account templates (26-51), the
// additional data template (62) and the language template (64) each use
// their own table. Tags under any other parent are unknown.
func TagName(tag, parentTag string) (string, bool) {
	if parentTag != "" {
		pn, ok := tagNum(parentTag)
		if !ok {
			return "", false
		}
		switch {
		case pn >= 26 && pn <= 51:
			name, ok := merchantSubTagNames[tag]
			return name, ok
		case pn == 62:
			name, ok := additionalSubTagNames[tag]
			return name, ok
		case pn == 64:
			name, ok := languageSubTagNames[tag]
			return name, ok
		default:
			return "", false
		}
	}

	if name, ok := rootTagNames[tag]; ok {
		return name, true
	}
	n, ok := tagNum(tag)
	if !ok {
		return "", false
	}
	switch {
	case n == 2 || n == 3:
		return "Merchant Account Information (Visa)", true
	case n == 4 || n == 5:
		return "Merchant Account Information (Mastercard)", true
	case n >= 6 && n <= 8:
		return "Merchant Account Information (EMVCo)", true
	case n == 9 || n == 10:
		return "Merchant Account Information (Discover)", true
	case n == 11 || n == 12:
		return "Merchant Account Information (Amex)", true
	case n == 13 || n == 14:
		return "Merchant Account Information (JCB)", true
	case n == 15 || n == 16:
		return "Merchant Account Information (UnionPay)", true
	case n >= 17 && n <= 25:
		return "Merchant Account Information (EMVCo Reserved)", true
	case n >= 26 && n <= 51:
		return "Merchant Account Information", true
	case n >= 65 && n <= 79:
		return "Reserved for Future Use", true
	case n >= 80 && n <= 99:
		return "Proprietary Template", true
	}
	return "", false
}

// Annotate returns the semantic gloss for a primitive value, or "".
func Annotate(tag, parentTag, value string) string {
	if parentTag != "" {
		return ""
	}
	switch tag {
	case "01":
		switch value {
		case "11":
			return "Static"
		case "12":
			return "Dynamic"
		}
	case "52":
		return mccNames[value]
	case "53":
		return currencyNames[value]
	case "55":
		switch value {
		case "01":
			return "Tip prompted on terminal"
		case "02":
			return "Fixed convenience fee"
		case "03":
			return "Percentage convenience fee"
		}
	}
	return ""
}
