package grading

import (
	"strings"
	"unicode/utf8"
)

// MatchText reports whether a free-text answer satisfies the expected
// answer under the given policy.
//
// In keyword mode the expected answer is split into tokens longer than two
// characters; a token counts as matched when it contains, or is contained
// in, any word of the submission. At least 60% of the tokens must match,
// boundary inclusive. If every expected word is two characters or shorter
// the whole strings are compared by containment in either direction.
func MatchText(submitted, expected string, p TextPolicy) bool {
	sub := strings.TrimSpace(submitted)
	exp := strings.TrimSpace(expected)
	if sub == "" || exp == "" {
		return false
	}
	if !p.CaseSensitive {
		sub = strings.ToLower(sub)
		exp = strings.ToLower(exp)
	}
	if p.ExactMatch {
		return sub == exp
	}

	var keywords []string
	for _, w := range strings.Fields(exp) {
		if utf8.RuneCountInString(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return strings.Contains(sub, exp) || strings.Contains(exp, sub)
	}

	words := strings.Fields(sub)
	matching := 0
	for _, k := range keywords {
		for _, w := range words {
			if strings.Contains(w, k) || strings.Contains(k, w) {
				matching++
				break
			}
		}
	}
	// matching/len(keywords) >= 0.6, compared on integers so the boundary
	// (e.g. 3 of 5) is exact.
	return 10*matching >= 6*len(keywords)
}
