package models

import "time"

// Booking statuses. Transitions between them are owned by the booking
// lifecycle service; nothing else writes the status field.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking is the central entity of the lifecycle: a customer's request for a
// provider's listed service. Rating and Comment mirror the linked review so
// booking lists render without a join.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ListingID     string    `bson:"listingId" json:"listingId"`
	CustomerID    string    `bson:"customerId" json:"customerId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	BookingDate   time.Time `bson:"bookingDate" json:"bookingDate"`
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes" json:"notes"`
	AssignedStaff string    `bson:"assignedStaff,omitempty" json:"assignedStaff,omitempty"`
	TimeSlot      string    `bson:"timeSlot,omitempty" json:"timeSlot,omitempty"`
	ProviderNotes string    `bson:"providerNotes,omitempty" json:"providerNotes,omitempty"`
	HasReview     bool      `bson:"hasReview" json:"hasReview"`
	ReviewID      *string   `bson:"reviewId" json:"reviewId"`
	Rating        *int      `bson:"rating" json:"rating"`
	Comment       *string   `bson:"comment" json:"comment"`
	CreatedBy     string    `bson:"createdBy" json:"createdBy"`
	UpdatedBy     string    `bson:"updatedBy" json:"updatedBy"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Terminal reports whether no further status transition is defined.
func (b *Booking) Terminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}
