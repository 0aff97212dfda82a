package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeekIsAlwaysMonday(t *testing.T) {
	// Sweep a stretch of days including month and DST-ish boundaries.
	start := time.Date(2025, 5, 1, 13, 45, 0, 0, time.Local)
	for i := 0; i < 60; i++ {
		d := start.AddDate(0, 0, i)
		monday := StartOfWeek(d)

		assert.Equal(t, time.Monday, monday.Weekday(), "for %s", d.Format("2006-01-02"))
		assert.False(t, monday.After(d), "week start must not be after the reference date")
		assert.False(t, d.After(monday.AddDate(0, 0, 6).Add(24*time.Hour-time.Nanosecond)),
			"reference date must fall within its own week")
	}
}

func TestStartOfWeekSundayMapsBackSixDays(t *testing.T) {
	sunday := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	require.Equal(t, time.Sunday, sunday.Weekday())

	got := StartOfWeek(sunday)
	assert.Equal(t, "2025-05-26", DayKey(got))
	assert.Equal(t, 0, got.Hour())
}

func TestStartOfWeekMondayIsIdentityAtMidnight(t *testing.T) {
	monday := time.Date(2025, 5, 26, 18, 30, 0, 0, time.Local)
	got := StartOfWeek(monday)
	assert.Equal(t, "2025-05-26", DayKey(got))
}

func TestWeekWindowForHasSevenContiguousDays(t *testing.T) {
	window := WeekWindowFor(time.Date(2025, 5, 28, 9, 0, 0, 0, time.Local))

	require.Len(t, window.Days, 7)
	assert.Equal(t, window.Start, window.Days[0])
	assert.Equal(t, window.End, window.Days[6])

	for i := 1; i < 7; i++ {
		assert.Equal(t, window.Days[i-1].AddDate(0, 0, 1), window.Days[i])
	}
}

func TestDayKeySameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 5, 26, 0, 0, 1, 0, time.Local)
	night := time.Date(2025, 5, 26, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2025, 5, 27, 0, 0, 0, 0, time.Local)

	assert.Equal(t, DayKey(morning), DayKey(night))
	assert.NotEqual(t, DayKey(night), DayKey(nextDay))
	assert.Equal(t, "2025-05-26", DayKey(morning))
}

func TestParseDayKeyRejectsNonCanonicalFormats(t *testing.T) {
	_, err := ParseDayKey("2025-05-26")
	require.NoError(t, err)

	for _, bad := range []string{"26-05-2025", "2025-5-6", "2025-05-26T00:00:00Z", "not-a-date", ""} {
		_, err := ParseDayKey(bad)
		assert.Error(t, err, "expected rejection of %q", bad)
	}
}
