package ports

import (
	"context"

	"route-consolidation-service/internal/domain"
)

// Port: a boundary for retrieving delivery-bearing records from the
// external order/subscription system.
type DeliverySource interface {
	// Return all delivery-bearing records scheduled inside the window.
	// Implementations may return cached records together with a
	// *domain.FetchError marked Stale when the upstream is unreachable.
	FetchWindow(ctx context.Context, window domain.WeekWindow) ([]domain.DeliveryRecord, error)
}
