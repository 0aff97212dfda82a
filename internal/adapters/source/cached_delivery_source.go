package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"route-consolidation-service/internal/domain"
	"route-consolidation-service/internal/ports"
)

// Redis-backed cache decorating another DeliverySource. Successful
// fetches are written through with a TTL; when the upstream fails, a
// cached window is served together with the fetch error marked Stale so
// the caller can warn the operator instead of showing an empty week.
type CachedDeliverySource struct {
	inner ports.DeliverySource
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedDeliverySource(inner ports.DeliverySource, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedDeliverySource {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedDeliverySource{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

func windowKey(window domain.WeekWindow) string {
	return "deliveries:window:" + window.Start.Format("2006-01-02")
}

func (c *CachedDeliverySource) FetchWindow(ctx context.Context, window domain.WeekWindow) ([]domain.DeliveryRecord, error) {
	key := windowKey(window)

	records, err := c.inner.FetchWindow(ctx, window)
	if err == nil {
		payload, merr := json.Marshal(records)
		if merr != nil {
			c.log.Warn("skipping window cache write", zap.String("key", key), zap.Error(merr))
			return records, nil
		}
		// Cache write failures are not fetch failures.
		if serr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); serr != nil {
			c.log.Warn("window cache write failed", zap.String("key", key), zap.Error(serr))
		}
		return records, nil
	}

	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		fe = &domain.FetchError{Cause: err}
	}

	payload, cerr := c.rdb.Get(ctx, key).Bytes()
	if cerr != nil {
		if !errors.Is(cerr, redis.Nil) {
			c.log.Warn("window cache read failed", zap.String("key", key), zap.Error(cerr))
		}
		return nil, fe
	}

	var cached []domain.DeliveryRecord
	if uerr := json.Unmarshal(payload, &cached); uerr != nil {
		return nil, &domain.FetchError{Cause: fmt.Errorf("decode cached window %s: %w", key, uerr)}
	}

	c.log.Warn("serving cached delivery window after upstream failure",
		zap.String("key", key),
		zap.Int("records", len(cached)),
		zap.Error(fe.Cause),
	)

	return cached, &domain.FetchError{Cause: fe.Cause, Stale: true}
}
