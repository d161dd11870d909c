package models

import "time"

// Audit actions form a closed set.
const (
	AuditActionNewBooking   = "new_booking"
	AuditActionStatusChange = "status_change"
	AuditActionReviewLeft   = "review_left"
)

// Audit is an immutable record of a significant booking-related event.
// Rows are append-only: nothing in the normal flow updates or deletes them.
type Audit struct {
	ID          string         `bson:"id" json:"id"`
	ServiceName string         `bson:"serviceName" json:"serviceName"`
	Action      string         `bson:"action" json:"action"`
	ProviderID  string         `bson:"providerId,omitempty" json:"providerId,omitempty"`
	CustomerID  string         `bson:"customerId,omitempty" json:"customerId,omitempty"`
	BookingID   string         `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	ListingID   string         `bson:"listingId,omitempty" json:"listingId,omitempty"`
	Meta        map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`
	Message     string         `bson:"message" json:"message"`
	CreatedBy   string         `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}
