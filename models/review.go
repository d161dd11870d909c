package models

import "time"

// Review statuses.
const (
	ReviewStatusActive  = "active"
	ReviewStatusHidden  = "hidden"
	ReviewStatusDeleted = "deleted"
)

// Review comment bounds, enforced at creation.
const (
	ReviewCommentMinLen = 10
	ReviewCommentMaxLen = 1000
)

// Review is a customer's rating of a completed booking. Exactly one review
// may exist per booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	ListingID  string    `bson:"listingId" json:"listingId"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment" json:"comment"`
	Status     string    `bson:"status" json:"status"`
	CreatedBy  string    `bson:"createdBy" json:"createdBy"`
	UpdatedBy  string    `bson:"updatedBy" json:"updatedBy"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
