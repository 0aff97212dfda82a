package domain

// StopStatus tracks delivery execution for a single stop.
type StopStatus string

const (
	StopPending   StopStatus = "pending"
	StopCompleted StopStatus = "completed"
)

// Represents a single delivery destination tied to one customer order.
// Coordinates may be absent or a placeholder; geocoding is owned by an
// external system.
type DeliveryStop struct {
	ID           string       `json:"id"`
	Address      string       `json:"address"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Status       StopStatus   `json:"status"`
	ETA          string       `json:"eta,omitempty"`
	OrderID      string       `json:"order_id,omitempty"`
	CustomerName string       `json:"customer,omitempty"`
}

// TransitionTo advances the stop status. The only legal move is
// pending -> completed; a completed stop never reverts.
func (s *DeliveryStop) TransitionTo(next StopStatus) error {
	if s.Status == StopPending && next == StopCompleted {
		s.Status = next
		return nil
	}

	return &InvalidTransitionError{
		Entity:    "stop",
		Current:   string(s.Status),
		Attempted: string(next),
	}
}
