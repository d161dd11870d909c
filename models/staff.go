package models

import "time"

// StaffInfo is a member of a provider's roster, assignable to bookings.
type StaffInfo struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Name       string    `bson:"name" json:"name"`
	Position   string    `bson:"position" json:"position"`
	Email      string    `bson:"email" json:"email"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
