// Package normalize provides best-effort cleaning of raw scraped field
// values: whitespace collapsing, numeric amount extraction and date parsing.
//
// Nothing in this package returns an error. Input that cannot be normalized
// is reported through a comma-ok result so callers can fall back to the raw
// text, matching the degrade-to-raw contract of the record processor.
package normalize

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Clean collapses every run of whitespace (spaces, tabs, newlines) into a
// single space and trims leading and trailing whitespace. Cleaning an
// already-clean string returns it unchanged.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
