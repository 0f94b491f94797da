// Package localday fixes the calendar-day boundary used by every aggregator.
// Instants are stored UTC and shifted to a fixed +05:30 offset here, nowhere else
package localday

import (
	"fmt"
	"sort"
	"time"
)

// Zone is the fixed +05:30 offset; no DST rules apply
var Zone = time.FixedZone("IST", 5*3600+30*60)

// Day is a calendar date under the fixed offset
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// FromTime returns the calendar day the instant falls on under the fixed offset.
// The same instant always maps to the same Day regardless of the caller's zone
func FromTime(t time.Time) Day {
	y, m, d := t.In(Zone).Date()
	return Day{Year: y, Month: m, Date: d}
}

// Parse reads a YYYY-MM-DD date into a Day
func Parse(s string) (Day, error) {
	t, err := time.ParseInLocation("2006-01-02", s, Zone)
	if err != nil {
		return Day{}, err
	}
	return FromTime(t), nil
}

// String formats the day as YYYY-MM-DD
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Date)
}

// Time returns midnight of the day under the fixed offset
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, Zone)
}

// Before reports whether d is earlier than o
func (d Day) Before(o Day) bool { return d.Time().Before(o.Time()) }

// Next returns the following calendar day
func (d Day) Next() Day { return FromTime(d.Time().AddDate(0, 0, 1)) }

// Weekday returns the English weekday name of the day
func (d Day) Weekday() string { return d.Time().Weekday().String() }

// HourOf returns the local hour [0, 23] of the instant
func HourOf(t time.Time) int { return t.In(Zone).Hour() }

// Weekday returns the English weekday name the instant falls on
func Weekday(t time.Time) string { return t.In(Zone).Weekday().String() }

// Bucket groups items by the day their instant falls on.
// The map is sparse; days with no items are absent
func Bucket[T any](items []T, at func(T) time.Time) map[Day][]T {
	out := make(map[Day][]T)
	for _, it := range items {
		d := FromTime(at(it))
		out[d] = append(out[d], it)
	}
	return out
}

// BucketRange is Bucket restricted to days in [start, end] inclusive
func BucketRange[T any](items []T, at func(T) time.Time, start, end Day) map[Day][]T {
	out := make(map[Day][]T)
	for _, it := range items {
		d := FromTime(at(it))
		if d.Before(start) || end.Before(d) {
			continue
		}
		out[d] = append(out[d], it)
	}
	return out
}

// SortedDays returns the keys of a bucketed map in ascending order
func SortedDays[T any](m map[Day][]T) []Day {
	out := make([]Day, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
