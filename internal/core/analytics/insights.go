package analytics

import (
	"fmt"
	"sort"

	"inkwell/internal/core/localday"
)

// Daypart boundaries in local hours; Night covers everything else
const (
	morningStart   = 5
	afternoonStart = 12
	eveningStart   = 17
	nightStart     = 22
)

// daypart maps a local hour to its named bucket
func daypart(hour int) string {
	switch {
	case hour >= morningStart && hour < afternoonStart:
		return "Morning"
	case hour >= afternoonStart && hour < eveningStart:
		return "Afternoon"
	case hour >= eveningStart && hour < nightStart:
		return "Evening"
	default:
		return "Night"
	}
}

// Synthesize derives writing patterns and recommendations over the window.
// Stats and sentiment must both succeed; their errors propagate unchanged
func Synthesize(records []Record, windowDays int) (InsightResult, error) {
	stats, err := ComputeStats(records, windowDays)
	if err != nil {
		return InsightResult{}, err
	}
	sent, err := ComputeSentiment(records, windowDays)
	if err != nil {
		return InsightResult{}, err
	}

	activeDays := len(localday.Bucket(records, recordAt))
	avgPerDay := float64(len(records)) / float64(windowDays)

	patterns := []string{
		fmt.Sprintf("Most active time: %s", mostActiveTime(records)),
		fmt.Sprintf("Writing consistency: %d days out of %d", activeDays, windowDays),
		fmt.Sprintf("Most productive day: %s", mostProductiveDay(stats.WritingFrequency)),
		fmt.Sprintf("Average entries per day: %.1f", avgPerDay),
	}

	return InsightResult{
		Stats:           stats,
		Sentiment:       sent,
		TopKeywords:     rankTopics(records),
		WritingPatterns: patterns,
		Recommendations: recommend(stats, sent, activeDays, windowDays),
	}, nil
}

// mostActiveTime returns the daypart of the mode hour, lowest hour on ties
func mostActiveTime(records []Record) string {
	hours := make(map[int]int)
	for _, r := range records {
		hours[localday.HourOf(r.CreatedAt)]++
	}
	best, bestCount := 0, -1
	for h := 0; h < 24; h++ {
		if hours[h] > bestCount {
			best, bestCount = h, hours[h]
		}
	}
	return daypart(best)
}

// mostProductiveDay returns the weekday with the highest entry count,
// alphabetical on ties
func mostProductiveDay(freq map[string]int) string {
	names := make([]string, 0, len(freq))
	for name := range freq {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestCount := "", -1
	for _, name := range names {
		if freq[name] > bestCount {
			best, bestCount = name, freq[name]
		}
	}
	return best
}

// Recommendation thresholds
const (
	shortEntryWords     = 100
	fewEntriesTotal     = 10
	negativeSentiment   = -0.2
	consistencyFraction = 0.3
)

// recommend emits suggestions in a fixed order so output is stable
func recommend(stats StatsResult, sent SentimentResult, activeDays, windowDays int) []string {
	var out []string
	if stats.AverageEntryLength < shortEntryWords {
		out = append(out, "Try writing longer entries to capture more detail about your day")
	}
	if stats.TotalEntries < fewEntriesTotal {
		out = append(out, "Write more regularly to build a stronger journaling habit")
	}
	if sent.OverallSentiment < negativeSentiment {
		out = append(out, "Your recent entries lean negative; try noting one positive moment each day")
	}
	if float64(activeDays) < consistencyFraction*float64(windowDays) {
		out = append(out, "Aim for shorter but more consistent daily writing")
	}
	return out
}
