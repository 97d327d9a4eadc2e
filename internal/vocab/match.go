package vocab

import "strings"

// Match returns the vocabulary terms found in text. A term matches when its
// lowercase form, or the lowercase form of any of its Variants, appears as a
// substring of the lowercased text. Matched terms are returned in vocabulary
// order, each at most once, regardless of where they appear in the text.
// Empty text matches nothing.
//
// Matching is substring containment, not token-boundary matching: short
// terms can match inside unrelated words. That is an accepted trade-off for
// recall on loosely written source pages.
func Match(text string, vocabulary []string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var matched []string

	for _, term := range vocabulary {
		if containsTerm(lower, term) {
			matched = append(matched, term)
		}
	}

	return matched
}

func containsTerm(lowerText, term string) bool {
	if strings.Contains(lowerText, strings.ToLower(term)) {
		return true
	}
	for _, variant := range Variants(term) {
		if strings.Contains(lowerText, strings.ToLower(variant)) {
			return true
		}
	}
	return false
}
