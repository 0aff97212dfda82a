package dto

import "time"

type ConsolidateRequest struct {
	DayKey      string `json:"day_key"`
	PendingOnly bool   `json:"pending_only"`
	Query       string `json:"q"`
}

type StopResponse struct {
	ID           string `json:"id"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	ETA          string `json:"eta,omitempty"`
	OrderID      string `json:"order_id,omitempty"`
	CustomerName string `json:"customer,omitempty"`
}

type RouteResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Area             string         `json:"area"`
	DriverID         string         `json:"driver_id"`
	DriverName       string         `json:"driver_name"`
	Status           string         `json:"status"`
	DeliveryDate     string         `json:"delivery_date"`
	StartTime        time.Time      `json:"start_time"`
	EstimatedEndTime time.Time      `json:"estimated_end_time"`
	ActualEndTime    *time.Time     `json:"actual_end_time,omitempty"`
	Stops            []StopResponse `json:"stops"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
