package models

import "time"

// Profile holds a user's public-facing details. One per user, auto-created
// at signup when missing.
type Profile struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"userId" json:"userId"`
	Name        string         `bson:"name" json:"name"`
	Image       string         `bson:"image,omitempty" json:"image,omitempty"`
	Bio         string         `bson:"bio,omitempty" json:"bio,omitempty"`
	Preferences map[string]any `bson:"preferences,omitempty" json:"preferences,omitempty"`
	Homestays   []string       `bson:"homestays,omitempty" json:"homestays,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Favorite marks a listing saved by a user. Saving it again removes it.
type Favorite struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	ListingID string    `bson:"listingId" json:"listingId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
