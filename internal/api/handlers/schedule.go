package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"route-consolidation-service/internal/api/dto"
	"route-consolidation-service/internal/domain"
	"route-consolidation-service/internal/services"
)

// ScheduleHandler exposes the operator's weekly calendar and day review
// listings.
type ScheduleHandler struct {
	Agg      *services.Aggregator
	PageSize int
	Log      *zap.Logger
}

// Week renders the week window and per-day summaries for the week
// containing the requested date (default: today). A stale-cache fetch
// still renders, with a warning attached.
func (h *ScheduleHandler) Week(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(h.Log, w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ref := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := services.ParseDayKey(raw)
		if err != nil {
			writeError(h.Log, w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	view, warning, ok := h.buildView(w, r, ref)
	if !ok {
		return
	}

	days := make([]string, 0, len(view.Window.Days))
	for _, d := range view.Window.Days {
		days = append(days, services.DayKey(d))
	}

	summaries := make([]dto.DaySummaryResponse, 0, len(view.Summaries))
	for _, s := range view.Summaries {
		summaries = append(summaries, dto.DaySummaryResponse{
			DateKey:      s.DateKey,
			TotalStops:   s.TotalStops,
			PendingStops: s.PendingStops,
		})
	}

	writeJSON(h.Log, w, r, http.StatusOK, dto.WeekResponse{
		WeekStart: services.DayKey(view.Window.Start),
		WeekEnd:   services.DayKey(view.Window.End),
		Days:      days,
		Summaries: summaries,
		Warning:   warning,
	})
}

// Day renders one day's aggregated stops after applying the operator's
// pending filter, search query, and pagination, in that order.
func (h *ScheduleHandler) Day(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(h.Log, w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	dateKey := q.Get("date")
	day, err := services.ParseDayKey(dateKey)
	if err != nil {
		writeError(h.Log, w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	pendingOnly := q.Get("pending_only") == "true" || q.Get("pending_only") == "1"
	query := q.Get("q")

	page := 1
	if raw := q.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			writeError(h.Log, w, r, http.StatusBadRequest, "page must be a positive integer")
			return
		}
	}

	pageSize := h.PageSize
	if raw := q.Get("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil || pageSize < 1 {
			writeError(h.Log, w, r, http.StatusBadRequest, "page_size must be a positive integer")
			return
		}
	}

	view, warning, ok := h.buildView(w, r, day)
	if !ok {
		return
	}

	items := services.CollectDayItems(view.Days[dateKey])
	filtered := services.Search(services.FilterPending(items, pendingOnly), query)
	paged := services.Paginate(filtered, page, pageSize)

	res := dto.DayReviewResponse{
		DateKey:    dateKey,
		Items:      make([]dto.ReviewItemResponse, 0, len(paged)),
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(filtered),
		Warning:    warning,
	}
	for _, it := range paged {
		res.Items = append(res.Items, dto.ReviewItemResponse{
			StopID:       it.Stop.ID,
			Address:      it.Stop.Address,
			Status:       string(it.Stop.Status),
			ETA:          it.Stop.ETA,
			OrderID:      it.Stop.OrderID,
			CustomerName: it.Stop.CustomerName,
			RouteID:      it.RouteID,
			RouteName:    it.RouteName,
			DriverName:   it.DriverName,
		})
	}

	writeJSON(h.Log, w, r, http.StatusOK, res)
}

// buildView fetches the week view and maps fetch outcomes onto HTTP
// semantics: fresh data passes through, stale data passes through with a
// warning string, a total fetch failure ends the request with 502.
func (h *ScheduleHandler) buildView(w http.ResponseWriter, r *http.Request, ref time.Time) (services.WeekView, string, bool) {
	view, err := h.Agg.BuildWeekView(r.Context(), ref)
	if err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) && fe.Stale {
			return view, "order source unreachable; showing cached data", true
		}

		h.Log.Error("week view fetch failed", zap.Error(err))
		writeError(h.Log, w, r, http.StatusBadGateway, "order source unavailable")
		return services.WeekView{}, "", false
	}

	return view, "", true
}
