package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"route-consolidation-service/internal/platform/metrics"
	"route-consolidation-service/internal/platform/obs"
)

// statusWriter captures the final HTTP status code and number of bytes
// written. This helps distinguish "handler returned 200" from "client
// received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling
// WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware assigns a request id, logs end-to-end request
// duration and response size, and feeds the request counter.
func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := uuid.NewString()
		r = r.WithContext(obs.WithRequestID(r.Context(), reqID))

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		metrics.HTTPRequests.WithLabelValues(r.URL.Path, strconv.Itoa(sw.status)).Inc()

		log.Info("request",
			zap.String("req_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.RequestURI()),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start)),
		)
	})
}
