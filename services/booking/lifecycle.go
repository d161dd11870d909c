package booking

import (
	"context"
	"fmt"

	"homestay/models"
	"homestay/policy"
	"homestay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create registers a new booking for the acting customer. The booking always
// enters the lifecycle as pending; the provider is derived from the listing.
func (s *DefaultLifecycleService) Create(ctx context.Context, actor policy.Principal, input CreateInput) (*models.Booking, error) {
	if input.Status == "" {
		return nil, utils.NewValidationError("status is required")
	}
	if input.Notes == "" {
		return nil, utils.NewValidationError("notes is required")
	}
	if input.ListingID == "" {
		return nil, utils.NewValidationError("listingId is required")
	}

	listing, err := s.Listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		ListingID:   listing.ID,
		CustomerID:  actor.ID,
		ProviderID:  listing.ProviderID,
		BookingDate: input.BookingDate,
		Status:      models.BookingStatusPending,
		Notes:       input.Notes,
		HasReview:   false,
		CreatedBy:   actor.ID,
		UpdatedBy:   actor.ID,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, models.Audit{
		ServiceName: "bookings",
		Action:      models.AuditActionNewBooking,
		ProviderID:  booking.ProviderID,
		CustomerID:  booking.CustomerID,
		BookingID:   booking.ID,
		ListingID:   booking.ListingID,
		Message:     fmt.Sprintf("New booking created for listing %s.", booking.ListingID),
		CreatedBy:   actor.ID,
	})

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("listingId", booking.ListingID),
		zap.String("customerId", booking.CustomerID))
	return booking, nil
}

// Accept confirms a pending booking. Only the owning provider (or an admin)
// may accept; staff assignment must come from the provider's own roster.
func (s *DefaultLifecycleService) Accept(ctx context.Context, actor policy.Principal, bookingID string, input AcceptInput) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != booking.ProviderID {
		return nil, utils.NewNotAuthorizedError("only the owning provider can accept a booking")
	}
	if !CanTransition(booking.Status, models.BookingStatusConfirmed) {
		return nil, utils.NewInvalidTransitionError(booking.Status, models.BookingStatusConfirmed)
	}

	if input.AssignedStaff != "" {
		staff, err := s.Staff.GetByID(ctx, input.AssignedStaff)
		if err != nil {
			return nil, err
		}
		if staff.ProviderID != booking.ProviderID {
			return nil, utils.NewValidationError("assigned staff does not belong to this provider")
		}
	}

	booking.Status = models.BookingStatusConfirmed
	booking.AssignedStaff = input.AssignedStaff
	booking.TimeSlot = input.TimeSlot
	booking.ProviderNotes = input.ProviderNotes
	booking.UpdatedBy = actor.ID
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.recordStatusChange(ctx, actor, booking)
	return booking, nil
}

// Advance moves a booking to the next status after validating the transition.
// Customers may only cancel their own bookings; providers only advance their
// own; admins are unrestricted.
func (s *DefaultLifecycleService) Advance(ctx context.Context, actor policy.Principal, bookingID, nextStatus string) (*models.Booking, error) {
	if nextStatus == "" {
		return nil, utils.NewValidationError("status is required")
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleProvider:
		if actor.ID != booking.ProviderID {
			return nil, utils.NewNotAuthorizedError("booking belongs to another provider")
		}
	case models.RoleCustomer:
		if actor.ID != booking.CustomerID {
			return nil, utils.NewNotAuthorizedError("booking belongs to another customer")
		}
		if nextStatus != models.BookingStatusCancelled {
			return nil, utils.NewNotAuthorizedError("customers may only cancel their bookings")
		}
	default:
		return nil, utils.NewNotAuthorizedError("unknown role")
	}

	if !CanTransition(booking.Status, nextStatus) {
		return nil, utils.NewInvalidTransitionError(booking.Status, nextStatus)
	}

	booking.Status = nextStatus
	booking.UpdatedBy = actor.ID
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.recordStatusChange(ctx, actor, booking)
	return booking, nil
}

// GetByID fetches one booking, enforcing ownership for non-admin callers.
func (s *DefaultLifecycleService) GetByID(ctx context.Context, actor policy.Principal, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleProvider:
		if actor.ID != booking.ProviderID {
			return nil, utils.NewNotAuthorizedError("booking belongs to another provider")
		}
	default:
		if actor.ID != booking.CustomerID {
			return nil, utils.NewNotAuthorizedError("booking belongs to another customer")
		}
	}
	return booking, nil
}

func (s *DefaultLifecycleService) recordStatusChange(ctx context.Context, actor policy.Principal, booking *models.Booking) {
	s.Audit.Record(ctx, models.Audit{
		ServiceName: "bookings",
		Action:      models.AuditActionStatusChange,
		ProviderID:  booking.ProviderID,
		CustomerID:  booking.CustomerID,
		BookingID:   booking.ID,
		ListingID:   booking.ListingID,
		Meta:        map[string]any{"to": booking.Status},
		Message:     fmt.Sprintf("Booking status changed to %s.", booking.Status),
		CreatedBy:   actor.ID,
	})
}
