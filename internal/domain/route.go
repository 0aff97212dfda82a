package domain

import "time"

// RouteStatus tracks a route through the dispatch lifecycle.
type RouteStatus string

const (
	RouteScheduled  RouteStatus = "scheduled"
	RouteActive     RouteStatus = "active"
	RouteInProgress RouteStatus = "in-progress"
	RouteCompleted  RouteStatus = "completed"
	RouteFailed     RouteStatus = "failed"
	RouteCancelled  RouteStatus = "cancelled"
)

// UnassignedDriver is the sentinel used for routes created without a
// driver. Assignment happens later in the dispatch workflow.
const UnassignedDriver = "unassigned"

// routeTransitions enumerates the forward edges of the route lifecycle.
// Cancellation is handled separately: it is reachable from any
// non-terminal state.
var routeTransitions = map[RouteStatus][]RouteStatus{
	RouteScheduled:  {RouteActive},
	RouteActive:     {RouteInProgress},
	RouteInProgress: {RouteCompleted, RouteFailed},
}

// Terminal reports whether no further transitions are allowed.
func (s RouteStatus) Terminal() bool {
	return s == RouteCompleted || s == RouteFailed || s == RouteCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s RouteStatus) CanTransitionTo(next RouteStatus) bool {
	if next == RouteCancelled {
		return !s.Terminal()
	}
	for _, allowed := range routeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// A dispatchable collection of stops assigned to one driver for one
// calendar day. Stops are a snapshot taken at consolidation time; later
// stop-level updates belong to the dispatch subsystem.
type Route struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Area             string         `json:"area"`
	DriverID         string         `json:"driver_id"`
	DriverName       string         `json:"driver_name"`
	Status           RouteStatus    `json:"status"`
	DeliveryDate     string         `json:"delivery_date"`
	StartTime        time.Time      `json:"start_time"`
	EstimatedEndTime time.Time      `json:"estimated_end_time"`
	ActualEndTime    *time.Time     `json:"actual_end_time,omitempty"`
	Stops            []DeliveryStop `json:"stops"`
}

// TransitionTo advances the route status, rejecting moves the lifecycle
// does not permit. State is unchanged on rejection.
func (r *Route) TransitionTo(next RouteStatus) error {
	if !r.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{
			Entity:    "route",
			Current:   string(r.Status),
			Attempted: string(next),
		}
	}
	r.Status = next
	return nil
}

// RouteDraft is a Route before persistence has assigned its identity.
type RouteDraft struct {
	Name             string
	Area             string
	DriverID         string
	DriverName       string
	Status           RouteStatus
	DeliveryDate     string
	StartTime        time.Time
	EstimatedEndTime time.Time
	Stops            []DeliveryStop
}

// Validate enforces draft-level invariants: at least one stop and no
// duplicate stop IDs within the route.
func (d RouteDraft) Validate() error {
	if len(d.Stops) == 0 {
		return ErrEmptyBatch
	}

	seen := make(map[string]struct{}, len(d.Stops))
	for _, s := range d.Stops {
		if _, ok := seen[s.ID]; ok {
			return &DuplicateStopError{StopID: s.ID}
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}
