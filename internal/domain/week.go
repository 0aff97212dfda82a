package domain

import "time"

// WeekWindow is a fixed Monday-start 7-day span scoping the operator's
// calendar view. Derived on demand, never persisted.
type WeekWindow struct {
	Start time.Time
	End   time.Time
	Days  []time.Time
}

// DaySummary holds per-day aggregate counts for the week view.
// Recomputed whenever the underlying stop set changes.
type DaySummary struct {
	DateKey      string `json:"date_key"`
	TotalStops   int    `json:"total_stops"`
	PendingStops int    `json:"pending_stops"`
}
