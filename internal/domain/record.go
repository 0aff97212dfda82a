package domain

import "time"

// RecordDetails is the nested stop container used by an older shape of
// the order-source payload.
type RecordDetails struct {
	Stops []DeliveryStop `json:"stops"`
}

// DeliveryRecord is a delivery-bearing record as exposed by the external
// order/subscription system. Two historical payload shapes exist: a flat
// stops list and a nested details.stops list. NormalizeStops resolves
// the shape once at ingestion; nothing downstream branches on it.
type DeliveryRecord struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	DriverName   string         `json:"driver_name"`
	DeliveryDate string         `json:"delivery_date"`
	Status       string         `json:"status"`
	Stops        []DeliveryStop `json:"stops,omitempty"`
	Details      *RecordDetails `json:"details,omitempty"`
}

// NormalizeStops returns the record's stops regardless of payload shape.
// The flat list wins when both are present. Malformed or stop-less
// records yield an empty slice rather than failing aggregation.
func (r DeliveryRecord) NormalizeStops() []DeliveryStop {
	if len(r.Stops) > 0 {
		return r.Stops
	}
	if r.Details != nil && len(r.Details.Stops) > 0 {
		return r.Details.Stops
	}
	return []DeliveryStop{}
}

// StopCount returns the number of stops after shape normalization.
func (r DeliveryRecord) StopCount() int {
	return len(r.NormalizeStops())
}

// DayKey returns the canonical YYYY-MM-DD key for the record's delivery
// date, or "" when the date is missing or malformed. The source may send
// either a bare date or a full ISO timestamp; only the date part is kept.
func (r DeliveryRecord) DayKey() string {
	if len(r.DeliveryDate) < 10 {
		return ""
	}
	key := r.DeliveryDate[:10]
	if _, err := time.Parse("2006-01-02", key); err != nil {
		return ""
	}
	return key
}
