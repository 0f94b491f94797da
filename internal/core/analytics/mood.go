package analytics

import (
	perr "inkwell/internal/platform/errors"
)

// ComputeMoodStats aggregates mood readings over the window.
// Labels are counted by exact match; callers normalize casing upstream
// if they want merged buckets. Returns a no data error when records is empty
func ComputeMoodStats(records []Record, windowDays int) (MoodResult, error) {
	if err := checkWindow(windowDays); err != nil {
		return MoodResult{}, err
	}
	if len(records) == 0 {
		return MoodResult{}, perr.NoDataf("no mood entries in the last %d days", windowDays)
	}

	total := 0.0
	counted := 0
	dist := make(map[string]int)
	for _, r := range records {
		if r.Value != nil {
			total += *r.Value
			counted++
		}
		if r.Label != "" {
			dist[r.Label]++
		}
	}

	avg := 0.0
	if counted > 0 {
		avg = total / float64(counted)
	}

	return MoodResult{
		AverageMood:      avg,
		MoodDistribution: dist,
		MoodTrend: dailyMeans(records, func(r Record) float64 {
			if r.Value == nil {
				return 0
			}
			return *r.Value
		}),
	}, nil
}
