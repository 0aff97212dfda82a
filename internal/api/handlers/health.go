package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// Health provides a minimal liveness check endpoint.
func Health(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeError(log, w, r, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		writeJSON(log, w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
