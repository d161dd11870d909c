package booking

import (
	"context"
	"time"

	bookingRepo "homestay/database/repository/booking"
	listingRepo "homestay/database/repository/listing"
	reviewRepo "homestay/database/repository/review"
	staffRepo "homestay/database/repository/staff"
	"homestay/models"
	"homestay/policy"
	"homestay/services/audit"
	"homestay/services/rating"
)

// LifecycleService owns every booking status transition and the side effects
// that hang off them: audit records, review linkage and the listing rating
// cache. Nothing else writes a booking's status.
type LifecycleService interface {
	Create(ctx context.Context, actor policy.Principal, input CreateInput) (*models.Booking, error)
	Accept(ctx context.Context, actor policy.Principal, bookingID string, input AcceptInput) (*models.Booking, error)
	Advance(ctx context.Context, actor policy.Principal, bookingID, nextStatus string) (*models.Booking, error)
	AttachReview(ctx context.Context, actor policy.Principal, bookingID string, ratingValue int, comment string) (*models.Review, error)
	RemoveReview(ctx context.Context, actor policy.Principal, reviewID string) error
	CascadeDeleteUser(ctx context.Context, userID string) error
	GetByID(ctx context.Context, actor policy.Principal, bookingID string) (*models.Booking, error)
}

// CreateInput carries the customer's booking request.
type CreateInput struct {
	ListingID   string    `json:"listingId"`
	BookingDate time.Time `json:"bookingDate"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
}

// AcceptInput carries the provider's confirmation details.
type AcceptInput struct {
	AssignedStaff string `json:"assignedStaff"`
	TimeSlot      string `json:"timeSlot"`
	ProviderNotes string `json:"providerNotes"`
}

// DefaultLifecycleService is the production implementation. Dependencies are
// explicit; operations take the acting principal as a parameter rather than
// reading it from ambient request state.
type DefaultLifecycleService struct {
	Bookings bookingRepo.BookingRepository
	Reviews  reviewRepo.ReviewRepository
	Listings listingRepo.ListingRepository
	Staff    staffRepo.StaffRepository
	Audit    audit.Recorder
	Ratings  rating.Aggregator
}
