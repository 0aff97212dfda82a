package services

import (
	"fmt"
	"time"

	"route-consolidation-service/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// StartOfWeek returns the Monday on or before t, normalized to midnight
// in t's location. Sunday maps back 6 days: the week containing a Sunday
// is the week ending on that Sunday, not the week starting on it.
func StartOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		offset = 6
	}

	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// WeekWindowFor derives the 7-day window containing t.
func WeekWindowFor(t time.Time) domain.WeekWindow {
	start := StartOfWeek(t)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	return domain.WeekWindow{
		Start: start,
		End:   days[6],
		Days:  days,
	}
}

// DayKey returns the canonical YYYY-MM-DD key for t in local time.
// Two times map to the same key iff they fall on the same calendar day.
// The zero-padded format keeps lexicographic and chronological order
// identical, which the week-selection range filter relies on.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey converts a canonical day key back into a local midnight
// time. Anything that is not strictly YYYY-MM-DD is rejected.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", key, err)
	}
	return t, nil
}
