package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLifecycleHappyPath(t *testing.T) {
	r := &Route{ID: "r1", Status: RouteScheduled}

	require.NoError(t, r.TransitionTo(RouteActive))
	require.NoError(t, r.TransitionTo(RouteInProgress))
	require.NoError(t, r.TransitionTo(RouteCompleted))

	assert.True(t, r.Status.Terminal())
}

func TestRouteCancelledFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []RouteStatus{RouteScheduled, RouteActive, RouteInProgress} {
		r := &Route{Status: from}
		assert.NoError(t, r.TransitionTo(RouteCancelled), "cancel from %s", from)
	}

	for _, from := range []RouteStatus{RouteCompleted, RouteFailed, RouteCancelled} {
		r := &Route{Status: from}
		assert.Error(t, r.TransitionTo(RouteCancelled), "cancel from terminal %s", from)
	}
}

func TestRouteInvalidTransitionsRejectedAndStateUnchanged(t *testing.T) {
	cases := []struct {
		from, to RouteStatus
	}{
		{RouteScheduled, RouteInProgress},
		{RouteScheduled, RouteCompleted},
		{RouteActive, RouteCompleted},
		{RouteCompleted, RouteActive},
		{RouteFailed, RouteScheduled},
		{RouteCancelled, RouteActive},
	}

	for _, tc := range cases {
		r := &Route{Status: tc.from}
		err := r.TransitionTo(tc.to)

		var ite *InvalidTransitionError
		require.ErrorAs(t, err, &ite, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, string(tc.from), ite.Current)
		assert.Equal(t, string(tc.to), ite.Attempted)
		assert.Equal(t, tc.from, r.Status, "state must be unchanged on rejection")
	}
}

func TestRouteFailedIsReachableFromInProgress(t *testing.T) {
	r := &Route{Status: RouteInProgress}
	require.NoError(t, r.TransitionTo(RouteFailed))
	assert.True(t, r.Status.Terminal())
}

func TestStopTransition(t *testing.T) {
	s := &DeliveryStop{ID: "s1", Status: StopPending}
	require.NoError(t, s.TransitionTo(StopCompleted))

	// A completed stop never reverts.
	err := s.TransitionTo(StopPending)
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "completed", ite.Current)
	assert.Equal(t, "pending", ite.Attempted)
	assert.Equal(t, StopCompleted, s.Status)

	assert.Error(t, s.TransitionTo(StopCompleted), "completed is terminal")
}

func TestRouteDraftValidate(t *testing.T) {
	empty := RouteDraft{}
	assert.ErrorIs(t, empty.Validate(), ErrEmptyBatch)

	dup := RouteDraft{Stops: []DeliveryStop{{ID: "x"}, {ID: "x"}}}
	var de *DuplicateStopError
	require.ErrorAs(t, dup.Validate(), &de)
	assert.Equal(t, "x", de.StopID)

	ok := RouteDraft{Stops: []DeliveryStop{{ID: "x"}, {ID: "y"}}}
	assert.NoError(t, ok.Validate())
}
