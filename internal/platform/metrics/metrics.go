package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operational counters for the consolidation core. Registered on the
// default registry and exposed through Handler.
var (
	ConsolidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "route_consolidations_total",
		Help: "Routes created from day consolidation.",
	})

	ConsolidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "route_consolidation_failures_total",
		Help: "Route consolidations rejected by the persistence layer.",
	})

	FetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "delivery_fetch_failures_total",
		Help: "Order-source fetches that failed with no cached fallback.",
	})

	StaleWindowsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "delivery_stale_windows_served_total",
		Help: "Week views built from cached records after an upstream failure.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by path and status.",
	}, []string{"path", "status"})
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
