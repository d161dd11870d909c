package booking

import "homestay/models"

// successors defines the legal status transitions. completed and cancelled
// have no successors and are terminal.
var successors = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:  {models.BookingStatusInProgress, models.BookingStatusCancelled},
	models.BookingStatusInProgress: {models.BookingStatusCompleted},
}

// CanTransition reports whether next is a legal successor of from.
func CanTransition(from, next string) bool {
	for _, s := range successors[from] {
		if s == next {
			return true
		}
	}
	return false
}

// Successors returns the statuses reachable from the given one.
func Successors(from string) []string {
	return successors[from]
}
