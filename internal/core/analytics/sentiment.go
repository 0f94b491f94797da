package analytics

import (
	"inkwell/internal/core/sentiment"
	"inkwell/internal/core/textkit"
	perr "inkwell/internal/platform/errors"
)

// ComputeSentiment aggregates polarity over the window.
// Returns a no data error when records is empty
func ComputeSentiment(records []Record, windowDays int) (SentimentResult, error) {
	if err := checkWindow(windowDays); err != nil {
		return SentimentResult{}, err
	}
	if len(records) == 0 {
		return SentimentResult{}, perr.NoDataf("no journal entries in the last %d days", windowDays)
	}

	scores := make([]float64, len(records))
	total := 0.0
	for i, r := range records {
		scores[i] = sentiment.Score(r.Text)
		total += scores[i]
	}

	// an entry's score attaches to each of its topics, so one entry
	// contributes to several topic means
	topicSums := make(map[string]float64)
	topicCounts := make(map[string]int)
	for i, r := range records {
		for _, topic := range textkit.ExtractTopics(r.Text, topicsPerEntry) {
			topicSums[topic] += scores[i]
			topicCounts[topic]++
		}
	}
	byTopic := make(map[string]float64, len(topicSums))
	for topic, sum := range topicSums {
		byTopic[topic] = sum / float64(topicCounts[topic])
	}

	return SentimentResult{
		OverallSentiment: total / float64(len(records)),
		SentimentByTopic: byTopic,
		SentimentTrend:   dailyMeans(records, func(r Record) float64 { return sentiment.Score(r.Text) }),
	}, nil
}
