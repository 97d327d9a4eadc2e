package vocab

import "strings"

// Variants derives alternate surface forms of a vocabulary term for
// matching. Two heuristics apply, each optional:
//
//   - a term ending in "e", "i" or "o" yields the term with that trailing
//     letter replaced by "a" (Italian gender/number inflection);
//   - a multi-word term additionally yields the uppercase first letter of
//     each word concatenated as an acronym.
//
// The result has zero to two entries and is deterministic. Variants only
// widen matching; they never replace the canonical term.
func Variants(term string) []string {
	var variants []string

	switch {
	case strings.HasSuffix(term, "e"):
		variants = append(variants, strings.TrimSuffix(term, "e")+"a")
	case strings.HasSuffix(term, "i"):
		variants = append(variants, strings.TrimSuffix(term, "i")+"a")
	case strings.HasSuffix(term, "o"):
		variants = append(variants, strings.TrimSuffix(term, "o")+"a")
	}

	words := strings.Fields(term)
	if len(words) > 1 {
		var acronym strings.Builder
		for _, word := range words {
			acronym.WriteString(strings.ToUpper(word[:1]))
		}
		variants = append(variants, acronym.String())
	}

	return variants
}
