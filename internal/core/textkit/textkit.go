// Package textkit provides pure text tokenization and topic extraction
package textkit

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// stopWords are filler words that never count as topics
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {},
	"by": {}, "about": {}, "as": {},
}

// minTopicLen filters out short tokens; topics must be longer than this
const minTopicLen = 3

var folder = cases.Fold()

// Tokenize lower-cases text and splits it into word runs.
// Underscores stay inside tokens, so snake_case tags count as one word
func Tokenize(text string) []string {
	folded := folder.String(text)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// WordCount returns the number of whitespace delimited tokens
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ExtractTopics returns up to max topics ranked by frequency.
// Stop words and tokens of 3 or fewer runes are dropped; ties keep
// first occurrence order so ranking is stable across calls
func ExtractTopics(text string, max int) []string {
	if max <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, tok := range Tokenize(text) {
		if len([]rune(tok)) <= minTopicLen {
			continue
		}
		if _, skip := stopWords[tok]; skip {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = len(order)
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}

// IsStopWord reports whether w is in the stop word set after folding
func IsStopWord(w string) bool {
	_, ok := stopWords[folder.String(w)]
	return ok
}
