package booking

import (
	"testing"

	"homestay/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, next string
		want       bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusInProgress, false},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusInProgress, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusInProgress, models.BookingStatusCompleted, true},
		{models.BookingStatusInProgress, models.BookingStatusCancelled, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCompleted, models.BookingStatusPending, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
		{"bogus", models.BookingStatusConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.next),
			"transition %s -> %s", tt.from, tt.next)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.Empty(t, Successors(models.BookingStatusCompleted))
	assert.Empty(t, Successors(models.BookingStatusCancelled))

	b := &models.Booking{Status: models.BookingStatusCompleted}
	assert.True(t, b.Terminal())
	b.Status = models.BookingStatusCancelled
	assert.True(t, b.Terminal())
	b.Status = models.BookingStatusInProgress
	assert.False(t, b.Terminal())
}
