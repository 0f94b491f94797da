package analytics

import (
	"sort"
	"time"

	"inkwell/internal/core/localday"
	"inkwell/internal/core/textkit"
	perr "inkwell/internal/platform/errors"
)

// topicsPerEntry caps how many topics a single entry contributes
const topicsPerEntry = 5

// topTopicsOverall caps the ranked topic list in results
const topTopicsOverall = 10

func recordAt(r Record) time.Time { return r.CreatedAt }

// ComputeStats aggregates writing statistics over the window.
// Returns a no data error when records is empty
func ComputeStats(records []Record, windowDays int) (StatsResult, error) {
	if err := checkWindow(windowDays); err != nil {
		return StatsResult{}, err
	}
	if len(records) == 0 {
		return StatsResult{}, perr.NoDataf("no journal entries in the last %d days", windowDays)
	}

	totalWords := 0
	freq := make(map[string]int)
	for _, r := range records {
		totalWords += textkit.WordCount(r.Text)
		freq[localday.Weekday(r.CreatedAt)]++
	}

	return StatsResult{
		TotalEntries:       len(records),
		AverageEntryLength: float64(totalWords) / float64(len(records)),
		WritingFrequency:   freq,
		WordCountTrend:     dailyMeans(records, func(r Record) float64 { return float64(textkit.WordCount(r.Text)) }),
		MostCommonTopics:   rankTopics(records),
	}, nil
}

// dailyMeans buckets records by day and averages fn over each bucket.
// The series is sparse and ascending; days without records are omitted
func dailyMeans(records []Record, fn func(Record) float64) []TrendPoint {
	buckets := localday.Bucket(records, recordAt)
	days := localday.SortedDays(buckets)

	out := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		sum := 0.0
		for _, r := range buckets[d] {
			sum += fn(r)
		}
		out = append(out, TrendPoint{
			Day:   d,
			Date:  d.String(),
			Value: sum / float64(len(buckets[d])),
		})
	}
	return out
}

// rankTopics aggregates each entry's top topics and ranks them overall.
// Ties keep first occurrence order across the record stream
func rankTopics(records []Record) []TopicCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, r := range records {
		for _, topic := range textkit.ExtractTopics(r.Text, topicsPerEntry) {
			if _, seen := counts[topic]; !seen {
				firstSeen[topic] = len(order)
				order = append(order, topic)
			}
			counts[topic]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > topTopicsOverall {
		order = order[:topTopicsOverall]
	}
	out := make([]TopicCount, 0, len(order))
	for _, t := range order {
		out = append(out, TopicCount{Topic: t, Count: counts[t]})
	}
	return out
}
