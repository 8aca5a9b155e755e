// Package spam scores free text against lists of banned terms.
//
// A score is the percentage of the words of a text that are covered by
// occurrences of banned terms. Terms may span several words; they match
// consecutive words of the text. Matching is case-insensitive under Unicode
// case folding.
package spam

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Score returns the percentage (0..100) of words in text covered by
// occurrences of terms. Blank text scores 0.
func Score(text string, terms []string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0
	}

	covered := make([]bool, len(words))
	for _, term := range terms {
		termWords := tokenize(term)
		if len(termWords) == 0 || len(termWords) > len(words) {
			continue
		}
		for i := 0; i+len(termWords) <= len(words); i++ {
			if matchesAt(words, termWords, i) {
				for j := range termWords {
					covered[i+j] = true
				}
			}
		}
	}

	hits := 0
	for _, c := range covered {
		if c {
			hits++
		}
	}
	return float64(hits) * 100 / float64(len(words))
}

// IsClean reports whether the spam score of text is strictly below
// threshold. Blank text is always clean.
func IsClean(text string, terms []string, threshold float64) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	return Score(text, terms) < threshold
}

func matchesAt(words, termWords []string, at int) bool {
	for j, tw := range termWords {
		if words[at+j] != tw {
			return false
		}
	}
	return true
}

func tokenize(s string) []string {
	folded := cases.Fold().String(s)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
