// Package window resolves report periods into concrete UTC instant ranges
// and assigns timestamps to time-bucket labels.
package window

import (
	"fmt"
	"time"
)

// Date layout accepted for explicit from/to bounds.
const dateLayout = "2006-01-02"

const day = 24 * time.Hour

// Window is a half-open [Start, End) instant range, always UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open range.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Granularity names a bucket size inside a window.
type Granularity string

// Supported bucket granularities.
const (
	Day     Granularity = "day"
	Week    Granularity = "week"
	Month   Granularity = "month"
	Quarter Granularity = "quarter"
)

// ValidPeriod reports whether period is one of the recognized tokens.
// Unrecognized periods do not fail resolution; Resolve falls back to the
// day window. Callers that want to surface the leniency should check here
// and log.
func ValidPeriod(period string) bool {
	switch period {
	case "today", "day", "week", "month", "year":
		return true
	}
	return false
}

// Resolve turns a period token or explicit from/to date strings into a
// half-open UTC window. Explicit bounds win over the period: from becomes
// the inclusive start of its UTC day, to becomes an exclusive bound one day
// past its UTC day, and a from without a to yields a single-day window.
// Malformed dates and unknown periods fall back to the day window rather
// than erroring; that permissiveness is deliberate.
func Resolve(now time.Time, period, from, to string) Window {
	now = now.UTC()

	if from != "" {
		if start, err := time.ParseInLocation(dateLayout, from, time.UTC); err == nil {
			end := start.Add(day)
			if to != "" {
				if t, err := time.ParseInLocation(dateLayout, to, time.UTC); err == nil {
					end = t.Add(day)
				}
			}
			if !end.After(start) {
				end = start.Add(day)
			}
			return Window{Start: start, End: end}
		}
	}

	today := midnight(now)
	switch period {
	case "week":
		start := mondayOf(now)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}
	case "year":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}
	default:
		// "today", "day", and anything unrecognized.
		return Window{Start: today, End: today.Add(day)}
	}
}

// DefaultGranularity picks a bucket size that keeps the series readable for
// the period: a yearly view gets quarters, a monthly view gets weeks,
// everything else gets days. Callers may override it per request.
func DefaultGranularity(period string) Granularity {
	switch period {
	case "year":
		return Quarter
	case "month":
		return Week
	default:
		return Day
	}
}

// ParseGranularity validates an explicit bucket override, falling back to
// def when the token is empty or unknown.
func ParseGranularity(s string, def Granularity) Granularity {
	switch Granularity(s) {
	case Day, Week, Month, Quarter:
		return Granularity(s)
	}
	return def
}

// BucketLabel assigns t to a bucket label for the given granularity. All
// label formats sort lexicographically in chronological order: YYYY-MM-DD
// for day and week (the week label is its Monday), YYYY-MM for month and
// YYYY-Qn for quarter.
func BucketLabel(t time.Time, g Granularity) string {
	t = t.UTC()
	switch g {
	case Week:
		return mondayOf(t).Format(dateLayout)
	case Month:
		return t.Format("2006-01")
	case Quarter:
		return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	default:
		return t.Format(dateLayout)
	}
}

// mondayOf returns the UTC midnight of the Monday starting t's ISO week.
func mondayOf(t time.Time) time.Time {
	t = midnight(t.UTC())
	offset := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	return t.AddDate(0, 0, offset)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
