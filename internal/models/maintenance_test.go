package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaintenanceStatus(t *testing.T) {
	cases := map[string]MaintenanceStatus{
		"logged":      StatusLogged,
		"ASSIGNED":    StatusAssigned,
		"in_progress": StatusInProgress,
		" Resolved ":  StatusResolved,
		"closed":      StatusClosed,
	}
	for input, want := range cases {
		got, err := ParseMaintenanceStatus(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}
}

func TestParseMaintenanceStatusRejectsUnknown(t *testing.T) {
	_, err := ParseMaintenanceStatus("escalated")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCanTransitionForwardOnly(t *testing.T) {
	// Forward moves, including skips, are allowed.
	assert.True(t, CanTransition(StatusLogged, StatusAssigned))
	assert.True(t, CanTransition(StatusLogged, StatusClosed))
	assert.True(t, CanTransition(StatusAssigned, StatusInProgress))
	assert.True(t, CanTransition(StatusInProgress, StatusResolved))
	assert.True(t, CanTransition(StatusResolved, StatusClosed))

	// Same status is a permitted no-op.
	assert.True(t, CanTransition(StatusInProgress, StatusInProgress))

	// Backward moves are not.
	assert.False(t, CanTransition(StatusClosed, StatusLogged))
	assert.False(t, CanTransition(StatusResolved, StatusInProgress))
	assert.False(t, CanTransition(StatusAssigned, StatusLogged))
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(StatusLogged, MaintenanceStatus("ESCALATED")))
	assert.False(t, CanTransition(MaintenanceStatus(""), StatusLogged))
}
