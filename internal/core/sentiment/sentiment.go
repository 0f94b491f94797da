// Package sentiment scores free text polarity on a [-1, 1] scale
package sentiment

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Score returns the VADER compound polarity of text in [-1, 1].
// Deterministic for a given input; blank text scores 0
func Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// Polarity labels a compound score using the conventional VADER cutoffs
func Polarity(score float64) string {
	switch {
	case score >= 0.05:
		return "positive"
	case score <= -0.05:
		return "negative"
	default:
		return "neutral"
	}
}
