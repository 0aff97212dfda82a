package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"route-consolidation-service/internal/domain"
	"route-consolidation-service/internal/platform/metrics"
	"route-consolidation-service/internal/platform/obs"
	"route-consolidation-service/internal/ports"
)

// Default route time window applied to consolidated routes. Demo-derived
// defaults; override through configuration.
const (
	DefaultRouteStartHour = 9
	DefaultRouteEndHour   = 14
)

// NameFunc derives a route name from the route's delivery day.
type NameFunc func(day time.Time) string

// DefaultRouteName is the stock naming convention for auto-consolidated
// routes: "Auto Route DD-MM-YYYY".
func DefaultRouteName(day time.Time) string {
	return fmt.Sprintf("Auto Route %s", day.Format("02-01-2006"))
}

// ConsolidatorConfig carries the tunables for route creation.
type ConsolidatorConfig struct {
	StartHour      int           // local hour the route starts, default 9
	EndHour        int           // local hour the route is estimated to end, default 14
	PersistTimeout time.Duration // upper bound on the persistence call
	Name           NameFunc      // route naming convention, default DefaultRouteName
}

// Consolidator turns a reviewed, filtered set of stops for one day into
// a persisted Route. Calls for the same day key are serialized; two
// identical calls still produce two distinct routes (no dedup) so
// operators can retry after a failure without losing data.
type Consolidator struct {
	repo ports.RouteRepository
	cfg  ConsolidatorConfig
	log  *zap.Logger

	mu       sync.Mutex
	dayLocks map[string]*sync.Mutex
}

func NewConsolidator(repo ports.RouteRepository, cfg ConsolidatorConfig, log *zap.Logger) *Consolidator {
	if cfg.StartHour <= 0 {
		cfg.StartHour = DefaultRouteStartHour
	}
	if cfg.EndHour <= 0 {
		cfg.EndHour = DefaultRouteEndHour
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = 10 * time.Second
	}
	if cfg.Name == nil {
		cfg.Name = DefaultRouteName
	}

	return &Consolidator{
		repo:     repo,
		cfg:      cfg,
		log:      log,
		dayLocks: make(map[string]*sync.Mutex),
	}
}

func (c *Consolidator) lockFor(dayKey string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.dayLocks[dayKey]
	if !ok {
		lock = &sync.Mutex{}
		c.dayLocks[dayKey] = lock
	}
	return lock
}

// ConsolidateDay creates a new scheduled Route from the filtered stops
// of one day. The stop list is snapshotted; stop statuses are retained,
// not reset. An empty batch is rejected before any persistence call.
// Persistence failures surface as *domain.ConsolidationError and are
// never retried automatically. The persistence call is detached from the
// caller's cancellation: an operator navigating away must not abort an
// in-flight route creation, only the timeout bounds it.
func (c *Consolidator) ConsolidateDay(ctx context.Context, dayKey string, stops []domain.DeliveryStop) (route domain.Route, err error) {
	defer obs.Time(ctx, c.log, "consolidate_day")(&err)

	if len(stops) == 0 {
		return domain.Route{}, domain.ErrEmptyBatch
	}

	var day time.Time
	if day, err = ParseDayKey(dayKey); err != nil {
		return domain.Route{}, fmt.Errorf("consolidate day: %w", err)
	}

	lock := c.lockFor(dayKey)
	lock.Lock()
	defer lock.Unlock()

	snapshot := append([]domain.DeliveryStop(nil), stops...)

	draft := domain.RouteDraft{
		Name:             c.cfg.Name(day),
		Area:             "General",
		DriverID:         domain.UnassignedDriver,
		DriverName:       domain.UnassignedDriver,
		Status:           domain.RouteScheduled,
		DeliveryDate:     dayKey,
		StartTime:        day.Add(time.Duration(c.cfg.StartHour) * time.Hour),
		EstimatedEndTime: day.Add(time.Duration(c.cfg.EndHour) * time.Hour),
		Stops:            snapshot,
	}

	if err := draft.Validate(); err != nil {
		return domain.Route{}, fmt.Errorf("consolidate day %s: %w", dayKey, err)
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.PersistTimeout)
	defer cancel()

	route, err = c.repo.CreateRoute(pctx, draft)
	if err != nil {
		metrics.ConsolidationFailures.Inc()
		c.log.Error("route consolidation failed",
			zap.String("day_key", dayKey),
			zap.Int("stops", len(snapshot)),
			zap.Error(err),
		)
		return domain.Route{}, &domain.ConsolidationError{DayKey: dayKey, Cause: err}
	}

	metrics.ConsolidationsTotal.Inc()
	c.log.Info("route consolidated",
		zap.String("route_id", route.ID),
		zap.String("day_key", dayKey),
		zap.Int("stops", len(route.Stops)),
	)

	return route, nil
}
