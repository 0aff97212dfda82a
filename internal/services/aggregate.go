package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"route-consolidation-service/internal/domain"
	"route-consolidation-service/internal/platform/metrics"
	"route-consolidation-service/internal/ports"
)

// SelectWeek keeps only records whose delivery date falls inside the
// window, inclusive on both ends. The comparison is done on YYYY-MM-DD
// day keys as strings; the zero-padded format makes lexicographic order
// match chronological order. Records with a malformed date are dropped.
func SelectWeek(records []domain.DeliveryRecord, window domain.WeekWindow) []domain.DeliveryRecord {
	lo := DayKey(window.Start)
	hi := DayKey(window.End)

	out := make([]domain.DeliveryRecord, 0, len(records))
	for _, r := range records {
		key := r.DayKey()
		if key == "" {
			continue
		}
		if key >= lo && key <= hi {
			out = append(out, r)
		}
	}
	return out
}

// GroupByDay buckets records by day key, preserving input order within
// each bucket.
func GroupByDay(records []domain.DeliveryRecord) map[string][]domain.DeliveryRecord {
	groups := make(map[string][]domain.DeliveryRecord)
	for _, r := range records {
		key := r.DayKey()
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], r)
	}
	return groups
}

// Summarize computes per-day stop counts for one bucket.
func Summarize(dateKey string, records []domain.DeliveryRecord) domain.DaySummary {
	sum := domain.DaySummary{DateKey: dateKey}
	for _, r := range records {
		for _, s := range r.NormalizeStops() {
			sum.TotalStops++
			if s.Status == domain.StopPending {
				sum.PendingStops++
			}
		}
	}
	return sum
}

// WeekView is the aggregated result the review screens consume: the
// window, day buckets, and one summary per window day (zero counts for
// empty days).
type WeekView struct {
	Window    domain.WeekWindow
	Days      map[string][]domain.DeliveryRecord
	Summaries []domain.DaySummary
}

// Aggregator builds week views from the external order source, applying
// the batch cap before bucketing.
type Aggregator struct {
	source ports.DeliverySource
	cap    int
	log    *zap.Logger
}

func NewAggregator(source ports.DeliverySource, batchCap int, log *zap.Logger) *Aggregator {
	if batchCap <= 0 {
		batchCap = DefaultBatchCap
	}
	return &Aggregator{source: source, cap: batchCap, log: log}
}

// BuildWeekView fetches, caps, selects, and buckets the week containing
// ref. When the source serves stale cached records it returns the view
// built from them together with the originating *domain.FetchError, so
// the caller can attach a staleness warning. A total fetch failure
// yields an empty view plus the error.
func (a *Aggregator) BuildWeekView(ctx context.Context, ref time.Time) (WeekView, error) {
	window := WeekWindowFor(ref)

	records, err := a.source.FetchWindow(ctx, window)
	if err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) && fe.Stale && len(records) > 0 {
			a.log.Warn("building week view from stale cached records",
				zap.String("week_start", DayKey(window.Start)),
				zap.Error(err),
			)
			metrics.StaleWindowsServed.Inc()
			return a.assemble(window, records), err
		}

		metrics.FetchFailures.Inc()
		if !errors.As(err, &fe) {
			err = &domain.FetchError{Cause: err}
		}
		return a.assemble(window, nil), fmt.Errorf("build week view: %w", err)
	}

	return a.assemble(window, records), nil
}

func (a *Aggregator) assemble(window domain.WeekWindow, records []domain.DeliveryRecord) WeekView {
	capped := CapRecords(SelectWeek(records, window), a.cap)
	groups := GroupByDay(capped)

	summaries := make([]domain.DaySummary, 0, len(window.Days))
	for _, day := range window.Days {
		key := DayKey(day)
		summaries = append(summaries, Summarize(key, groups[key]))
	}

	return WeekView{Window: window, Days: groups, Summaries: summaries}
}
