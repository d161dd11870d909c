package listing

import (
	"context"

	listingRepo "homestay/database/repository/listing"
	"homestay/models"
	"homestay/policy"
	"homestay/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ListingService manages service offerings. The rating field is never
// written here; it belongs to the rating aggregator.
type ListingService interface {
	Create(ctx context.Context, actor policy.Principal, input CreateInput) (*models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Find(ctx context.Context, filter bson.M, limit, skip int64) (*models.Page[models.Listing], error)
	Update(ctx context.Context, actor policy.Principal, id string, input CreateInput) (*models.Listing, error)
	Delete(ctx context.Context, actor policy.Principal, id string) error
}

// CreateInput carries the provider-editable listing fields.
type CreateInput struct {
	Category     string         `json:"category"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	PriceRange   string         `json:"priceRange"`
	Location     string         `json:"location"`
	WhatsappLink string         `json:"whatsappLink"`
	ImageURL     string         `json:"imageUrl"`
	Availability map[string]any `json:"availability"`
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	LeadTime     string         `json:"leadTime"`
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Repo listingRepo.ListingRepository
}

func (s *DefaultListingService) Create(ctx context.Context, actor policy.Principal, input CreateInput) (*models.Listing, error) {
	if actor.Role != models.RoleProvider && actor.Role != models.RoleAdmin {
		return nil, utils.NewNotAuthorizedError("only providers can publish listings")
	}
	if input.Name == "" || input.Category == "" {
		return nil, utils.NewValidationError("name and category are required")
	}

	l := &models.Listing{
		ID:           uuid.New().String(),
		ProviderID:   actor.ID,
		Category:     input.Category,
		Name:         input.Name,
		Description:  input.Description,
		PriceRange:   input.PriceRange,
		Location:     input.Location,
		WhatsappLink: input.WhatsappLink,
		ImageURL:     input.ImageURL,
		Availability: input.Availability,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		LeadTime:     input.LeadTime,
		Rating:       nil,
		CreatedBy:    actor.ID,
		UpdatedBy:    actor.ID,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *DefaultListingService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultListingService) Find(ctx context.Context, filter bson.M, limit, skip int64) (*models.Page[models.Listing], error) {
	if filter == nil {
		filter = bson.M{}
	}
	listings, total, err := s.Repo.Find(ctx, filter, limit, skip)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Listing]{Total: total, Limit: limit, Skip: skip, Data: listings}, nil
}

func (s *DefaultListingService) Update(ctx context.Context, actor policy.Principal, id string, input CreateInput) (*models.Listing, error) {
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != l.ProviderID {
		return nil, utils.NewNotAuthorizedError("listing belongs to another provider")
	}

	l.Category = input.Category
	l.Name = input.Name
	l.Description = input.Description
	l.PriceRange = input.PriceRange
	l.Location = input.Location
	l.WhatsappLink = input.WhatsappLink
	l.ImageURL = input.ImageURL
	l.Availability = input.Availability
	l.StartTime = input.StartTime
	l.EndTime = input.EndTime
	l.LeadTime = input.LeadTime
	l.UpdatedBy = actor.ID
	if err := s.Repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *DefaultListingService) Delete(ctx context.Context, actor policy.Principal, id string) error {
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin && actor.ID != l.ProviderID {
		return utils.NewNotAuthorizedError("listing belongs to another provider")
	}
	return s.Repo.Delete(ctx, id)
}
