package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatus(t *testing.T) {
	tests := []struct {
		internal string
		display  string
	}{
		{StatusPending, DisplayPending},
		{StatusRunning, DisplayPending},
		{StatusCanceling, DisplayPending},
		{StatusCompleted, DisplaySuccess},
		{StatusCompletedWithErrors, DisplayWarning},
		{StatusFailed, DisplayError},
		{StatusCanceled, DisplayCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.internal, func(t *testing.T) {
			assert.Equal(t, tt.display, DisplayStatus(tt.internal))
		})
	}
}

func TestInternalStatuses_RoundTrip(t *testing.T) {
	// Every internal status must map back to itself through the display set.
	internal := []string{
		StatusPending, StatusRunning, StatusCompleted, StatusCompletedWithErrors,
		StatusFailed, StatusCanceling, StatusCanceled,
	}
	for _, status := range internal {
		assert.Contains(t, InternalStatuses(DisplayStatus(status)), status,
			"status %s lost in display round-trip", status)
	}
}

func TestInternalStatuses_UnknownFilter(t *testing.T) {
	assert.Nil(t, InternalStatuses("BOGUS"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCompletedWithErrors))
	assert.True(t, IsTerminal(StatusFailed))
	assert.True(t, IsTerminal(StatusCanceled))

	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusRunning))
	assert.False(t, IsTerminal(StatusCanceling))
}
