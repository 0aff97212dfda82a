package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch rejects consolidation of zero stops before any
// persistence call is made.
var ErrEmptyBatch = errors.New("consolidation batch must contain at least one stop")

// InvalidTransitionError reports a status change the state machine does
// not permit, naming the attempted and current states.
type InvalidTransitionError struct {
	Entity    string
	Current   string
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition from %q to %q", e.Entity, e.Current, e.Attempted)
}

// DuplicateStopError reports two stops sharing an ID within one route.
type DuplicateStopError struct {
	StopID string
}

func (e *DuplicateStopError) Error() string {
	return fmt.Sprintf("route contains duplicate stop id %q", e.StopID)
}

// FetchError wraps a failure of the external order source. Stale marks
// the case where cached records were served in place of fresh data; the
// caller receives both the records and this error.
type FetchError struct {
	Cause error
	Stale bool
}

func (e *FetchError) Error() string {
	if e.Stale {
		return fmt.Sprintf("fetch deliveries: upstream failed, served cached window: %v", e.Cause)
	}
	return fmt.Sprintf("fetch deliveries: %v", e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// ConsolidationError wraps a persistence failure during route creation.
// It is surfaced verbatim to the operator; retries are operator-gated.
type ConsolidationError struct {
	DayKey string
	Cause  error
}

func (e *ConsolidationError) Error() string {
	return fmt.Sprintf("consolidate day %s: %v", e.DayKey, e.Cause)
}

func (e *ConsolidationError) Unwrap() error { return e.Cause }
