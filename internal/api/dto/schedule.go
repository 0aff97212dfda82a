package dto

// Per-day aggregate counts for the week view.
type DaySummaryResponse struct {
	DateKey      string `json:"date_key"`
	TotalStops   int    `json:"total_stops"`
	PendingStops int    `json:"pending_stops"`
}

type WeekResponse struct {
	WeekStart string               `json:"week_start"`
	WeekEnd   string               `json:"week_end"`
	Days      []string             `json:"days"`
	Summaries []DaySummaryResponse `json:"summaries"`
	Warning   string               `json:"warning,omitempty"`
}

// One stop decorated with its parent record for review and search.
type ReviewItemResponse struct {
	StopID       string `json:"stop_id"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	ETA          string `json:"eta,omitempty"`
	OrderID      string `json:"order_id,omitempty"`
	CustomerName string `json:"customer,omitempty"`
	RouteID      string `json:"route_id"`
	RouteName    string `json:"route_name"`
	DriverName   string `json:"driver_name"`
}

type DayReviewResponse struct {
	DateKey    string               `json:"date_key"`
	Items      []ReviewItemResponse `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalItems int                  `json:"total_items"`
	Warning    string               `json:"warning,omitempty"`
}
