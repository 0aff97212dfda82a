package api

import (
	"net/http"

	"go.uber.org/zap"

	"route-consolidation-service/internal/api/handlers"
	"route-consolidation-service/internal/platform/metrics"
	"route-consolidation-service/internal/ports"
	"route-consolidation-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(
	agg *services.Aggregator,
	cons *services.Consolidator,
	repo ports.RouteRepository,
	pageSize int,
	log *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	scheduleHandler := &handlers.ScheduleHandler{
		Agg:      agg,
		PageSize: pageSize,
		Log:      log,
	}
	routesHandler := &handlers.RoutesHandler{
		Agg:  agg,
		Cons: cons,
		Repo: repo,
		Log:  log,
	}

	mux.HandleFunc("/health", handlers.Health(log))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/schedule/week", scheduleHandler.Week)
	mux.HandleFunc("/schedule/day", scheduleHandler.Day)
	mux.HandleFunc("/routes", routesHandler.List)
	mux.HandleFunc("/routes/consolidate", routesHandler.Consolidate)

	return loggingMiddleware(log, mux)
}
