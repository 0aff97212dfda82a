package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"route-consolidation-service/internal/api/dto"
	"route-consolidation-service/internal/domain"
	"route-consolidation-service/internal/ports"
	"route-consolidation-service/internal/services"
)

// RoutesHandler exposes route consolidation and listing. Consolidation
// is the operator's explicit "send to route" action: it re-aggregates
// the day under the submitted filters and snapshots the result.
type RoutesHandler struct {
	Agg  *services.Aggregator
	Cons *services.Consolidator
	Repo ports.RouteRepository
	Log  *zap.Logger
}

func (h *RoutesHandler) Consolidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(h.Log, w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ConsolidateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(h.Log, w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(h.Log, w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	day, err := services.ParseDayKey(req.DayKey)
	if err != nil {
		writeError(h.Log, w, r, http.StatusBadRequest, "day_key must be YYYY-MM-DD")
		return
	}

	view, err := h.Agg.BuildWeekView(r.Context(), day)
	if err != nil {
		var fe *domain.FetchError
		// Stale data is acceptable here: the operator explicitly chose to
		// consolidate what the review screen showed them.
		if !errors.As(err, &fe) || !fe.Stale {
			h.Log.Error("consolidation fetch failed", zap.String("day_key", req.DayKey), zap.Error(err))
			writeError(h.Log, w, r, http.StatusBadGateway, "order source unavailable")
			return
		}
	}

	items := services.CollectDayItems(view.Days[req.DayKey])
	filtered := services.Search(services.FilterPending(items, req.PendingOnly), req.Query)

	stops := make([]domain.DeliveryStop, 0, len(filtered))
	for _, it := range filtered {
		stops = append(stops, it.Stop)
	}

	route, err := h.Cons.ConsolidateDay(r.Context(), req.DayKey, stops)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyBatch):
			writeError(h.Log, w, r, http.StatusUnprocessableEntity, "no stops to consolidate for this day")
		default:
			h.Log.Error("consolidation failed", zap.String("day_key", req.DayKey), zap.Error(err))
			writeError(h.Log, w, r, http.StatusBadGateway, "route creation failed; no route was saved")
		}
		return
	}

	writeJSON(h.Log, w, r, http.StatusCreated, toRouteResponse(route))
}

func (h *RoutesHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(h.Log, w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		h.Log.Error("list routes failed", zap.Error(err))
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, rt := range routes {
		res.Routes = append(res.Routes, toRouteResponse(rt))
	}

	writeJSON(h.Log, w, r, http.StatusOK, res)
}
