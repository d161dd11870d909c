package models

import "time"

// Listing is a service offering published by a provider.
type Listing struct {
	ID           string         `bson:"id" json:"id"`
	ProviderID   string         `bson:"providerId" json:"providerId"`
	Category     string         `bson:"category" json:"category"`
	Name         string         `bson:"name" json:"name"`
	Description  string         `bson:"description" json:"description"`
	PriceRange   string         `bson:"priceRange" json:"priceRange"`
	Location     string         `bson:"location" json:"location"`
	WhatsappLink string         `bson:"whatsappLink" json:"whatsappLink"`
	ImageURL     string         `bson:"imageUrl" json:"imageUrl"`
	Availability map[string]any `bson:"availability,omitempty" json:"availability,omitempty"`
	StartTime    string         `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime      string         `bson:"endTime,omitempty" json:"endTime,omitempty"`
	LeadTime     string         `bson:"leadTime,omitempty" json:"leadTime,omitempty"`

	// Rating is a derived cache of the average review rating. It is not
	// authoritative: the rating aggregator recomputes it from the reviews
	// collection. Nil means no reviews yet.
	Rating *float64 `bson:"rating" json:"rating"`

	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
