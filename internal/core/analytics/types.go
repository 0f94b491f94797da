// Package analytics computes windowed aggregations over journal and mood records.
// Everything here is pure; callers pass an immutable snapshot and own the result
package analytics

import (
	"time"

	"inkwell/internal/core/localday"
	perr "inkwell/internal/platform/errors"

	"github.com/google/uuid"
)

// Record is one journal entry or mood reading as the aggregators see it.
// Journal records carry Text; mood records carry Value in [1, 10] and Label,
// with Text as an optional note. Aggregators never mutate records
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time // stored UTC; day boundaries come from localday
	Text      string
	Value     *float64
	Label     string
}

// TopicCount is a ranked topic with its occurrence count
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TrendPoint is one day of a sparse daily series
type TrendPoint struct {
	Day   localday.Day `json:"-"`
	Date  string       `json:"date"`
	Value float64      `json:"value"`
}

// StatsResult summarizes writing behavior over a window
type StatsResult struct {
	TotalEntries       int            `json:"total_entries"`
	AverageEntryLength float64        `json:"average_entry_length"`
	WritingFrequency   map[string]int `json:"writing_frequency"`
	WordCountTrend     []TrendPoint   `json:"word_count_trend"`
	MostCommonTopics   []TopicCount   `json:"most_common_topics"`
}

// SentimentResult summarizes polarity over a window
type SentimentResult struct {
	OverallSentiment float64            `json:"overall_sentiment"`
	SentimentByTopic map[string]float64 `json:"sentiment_by_topic"`
	SentimentTrend   []TrendPoint       `json:"sentiment_trend"`
}

// MoodResult summarizes mood readings over a window.
// Summary is filled by the caller when a cached daily summary exists
type MoodResult struct {
	AverageMood      float64        `json:"average_mood"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	MoodTrend        []TrendPoint   `json:"mood_trend"`
	Summary          string         `json:"summary,omitempty"`
}

// InsightResult bundles stats, sentiment, and derived observations
type InsightResult struct {
	Stats           StatsResult     `json:"stats"`
	Sentiment       SentimentResult `json:"sentiment"`
	TopKeywords     []TopicCount    `json:"top_keywords"`
	WritingPatterns []string        `json:"writing_patterns"`
	Recommendations []string        `json:"recommendations"`
}

// Window bounds accepted by every aggregator
const (
	MinWindowDays = 1
	MaxWindowDays = 365
)

// checkWindow rejects windows outside [MinWindowDays, MaxWindowDays]
func checkWindow(windowDays int) error {
	if windowDays < MinWindowDays || windowDays > MaxWindowDays {
		return perr.InvalidWindowf("window must be between %d and %d days, got %d", MinWindowDays, MaxWindowDays, windowDays)
	}
	return nil
}
