package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"route-consolidation-service/internal/api/dto"
	"route-consolidation-service/internal/domain"
)

func writeJSON(log *zap.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(log *zap.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(log, w, r, status, map[string]string{"error": msg})
}

func toRouteResponse(rt domain.Route) dto.RouteResponse {
	stops := make([]dto.StopResponse, 0, len(rt.Stops))
	for _, s := range rt.Stops {
		stops = append(stops, dto.StopResponse{
			ID:           s.ID,
			Address:      s.Address,
			Status:       string(s.Status),
			ETA:          s.ETA,
			OrderID:      s.OrderID,
			CustomerName: s.CustomerName,
		})
	}

	return dto.RouteResponse{
		ID:               rt.ID,
		Name:             rt.Name,
		Area:             rt.Area,
		DriverID:         rt.DriverID,
		DriverName:       rt.DriverName,
		Status:           string(rt.Status),
		DeliveryDate:     rt.DeliveryDate,
		StartTime:        rt.StartTime,
		EstimatedEndTime: rt.EstimatedEndTime,
		ActualEndTime:    rt.ActualEndTime,
		Stops:            stops,
	}
}
