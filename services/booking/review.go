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

// AttachReview creates the single review a customer may leave on a completed
// booking, back-patches the booking's denormalized review fields and
// refreshes the listing's rating cache.
func (s *DefaultLifecycleService) AttachReview(ctx context.Context, actor policy.Principal, bookingID string, ratingValue int, comment string) (*models.Review, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != booking.CustomerID {
		return nil, utils.NewNotAuthorizedError("only the booking's customer can leave a review")
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, utils.NewNotCompletedError(booking.ID)
	}
	if booking.HasReview {
		return nil, utils.NewAlreadyReviewedError(booking.ID)
	}
	if ratingValue < 1 || ratingValue > 5 {
		return nil, utils.NewValidationError("rating must be a whole number between 1 and 5")
	}
	if len(comment) < models.ReviewCommentMinLen {
		return nil, utils.NewValidationError("review must be at least 10 characters long")
	}
	if len(comment) > models.ReviewCommentMaxLen {
		return nil, utils.NewValidationError("review cannot exceed 1000 characters")
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		ListingID:  booking.ListingID,
		CustomerID: booking.CustomerID,
		ProviderID: booking.ProviderID,
		Rating:     ratingValue,
		Comment:    comment,
		Status:     models.ReviewStatusActive,
		CreatedBy:  actor.ID,
		UpdatedBy:  actor.ID,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	booking.HasReview = true
	booking.ReviewID = &review.ID
	booking.Rating = &review.Rating
	booking.Comment = &review.Comment
	booking.UpdatedBy = actor.ID
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, models.Audit{
		ServiceName: "bookings",
		Action:      models.AuditActionReviewLeft,
		ProviderID:  booking.ProviderID,
		CustomerID:  booking.CustomerID,
		BookingID:   booking.ID,
		ListingID:   booking.ListingID,
		Meta:        map[string]any{"rating": review.Rating, "comment": review.Comment},
		Message:     fmt.Sprintf("New review was left with %d stars.", review.Rating),
		CreatedBy:   actor.ID,
	})

	// Synchronous so the listing's rating is fresh within this request.
	if err := s.Ratings.Recompute(ctx, booking.ListingID); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("review attached",
		zap.String("bookingId", booking.ID),
		zap.String("reviewId", review.ID),
		zap.Int("rating", review.Rating))
	return review, nil
}

// RemoveReview deletes a review, unlinks it from its booking and refreshes
// the listing's rating cache. The booking's denormalized rating and comment
// are cleared along with the link.
func (s *DefaultLifecycleService) RemoveReview(ctx context.Context, actor policy.Principal, reviewID string) error {
	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin && actor.ID != review.CustomerID {
		return utils.NewNotAuthorizedError("only the review's author can remove it")
	}

	if err := s.Reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	booking, err := s.Bookings.GetByID(ctx, review.BookingID)
	if err != nil {
		return err
	}
	booking.HasReview = false
	booking.ReviewID = nil
	booking.Rating = nil
	booking.Comment = nil
	booking.UpdatedBy = actor.ID
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return err
	}

	return s.Ratings.Recompute(ctx, review.ListingID)
}
