package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// amountRE matches an optional euro marker, a group of digits with "." and
// "," separators, and an optional trailing currency word.
var amountRE = regexp.MustCompile(`(?:€\s*)?([\d.,]+)(?:\s*(?:euro|€|EUR))?`)

// ExtractNumber pulls the first numeric magnitude out of currency or
// number-bearing text. European formatting is assumed: "." is a thousands
// separator and is stripped, "," is the decimal separator. Only the first
// match in the text is considered.
//
// The second return is false when the text holds no numeric pattern or the
// matched group does not parse after separator substitution. Extraction is
// best effort, not a strict parser.
func ExtractNumber(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	m := amountRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	cleaned := strings.ReplaceAll(m[1], ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatNumber renders an extracted magnitude in its minimal decimal form,
// the representation stored in normalized records.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
