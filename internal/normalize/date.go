package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first full parse wins. Day-first
// layouts precede year-first ones.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
	"2006-01-02",
	"2006.01.02",
}

// canonicalLayout is the form every recognized date is normalized to.
const canonicalLayout = "2006-01-02"

type monthPattern struct {
	name string
	num  string
	re   *regexp.Regexp
}

// italianMonths backs the locale fallback for dates written out in words,
// e.g. "25 dicembre 2024".
var italianMonths = func() []monthPattern {
	names := []struct{ name, num string }{
		{"gennaio", "01"}, {"febbraio", "02"}, {"marzo", "03"},
		{"aprile", "04"}, {"maggio", "05"}, {"giugno", "06"},
		{"luglio", "07"}, {"agosto", "08"}, {"settembre", "09"},
		{"ottobre", "10"}, {"novembre", "11"}, {"dicembre", "12"},
	}
	months := make([]monthPattern, 0, len(names))
	for _, m := range names {
		months = append(months, monthPattern{
			name: m.name,
			num:  m.num,
			re:   regexp.MustCompile(`(\d+)\s+` + m.name + `\s+(\d{4})`),
		})
	}
	return months
}()

// ParseDate converts date text into the canonical YYYY-MM-DD form. The text
// is cleaned first, then matched against the fixed numeric layouts; if none
// parse, a case-insensitive "<day> <Italian month name> <year>" pattern is
// tried. When neither strategy succeeds the cleaned text is returned
// unchanged with ok=false: callers must treat the output as possibly still
// free text.
func ParseDate(text string) (string, bool) {
	cleaned := Clean(text)
	if cleaned == "" {
		return cleaned, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(canonicalLayout), true
		}
	}

	lower := strings.ToLower(cleaned)
	for _, month := range italianMonths {
		if !strings.Contains(lower, month.name) {
			continue
		}
		if m := month.re.FindStringSubmatch(lower); m != nil {
			day := m[1]
			if len(day) < 2 {
				day = "0" + day
			}
			return m[2] + "-" + month.num + "-" + day, true
		}
	}

	return cleaned, false
}
