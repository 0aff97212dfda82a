package ports

import (
	"context"

	"route-consolidation-service/internal/domain"
)

// Port: a boundary for persisting and listing consolidated routes.
type RouteRepository interface {
	// Persist a draft and return the stored route with its assigned id.
	CreateRoute(ctx context.Context, draft domain.RouteDraft) (domain.Route, error)
	// Retrieve all persisted routes, oldest first.
	ListRoutes(ctx context.Context) ([]domain.Route, error)
}
