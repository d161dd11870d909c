package booking

import (
	"context"

	"homestay/utils"

	"go.uber.org/zap"
)

// CascadeDeleteUser removes every booking where the user appears as customer
// or provider, and every review the user authored. The steps run
// sequentially with no rollback: a failure partway leaves earlier deletions
// in place and surfaces to the caller.
func (s *DefaultLifecycleService) CascadeDeleteUser(ctx context.Context, userID string) error {
	bookings, err := s.Bookings.DeleteByUser(ctx, userID)
	if err != nil {
		return err
	}
	reviews, err := s.Reviews.DeleteByCustomer(ctx, userID)
	if err != nil {
		return err
	}

	utils.GetLogger().Info("cascade delete completed",
		zap.String("userId", userID),
		zap.Int64("bookingsRemoved", bookings),
		zap.Int64("reviewsRemoved", reviews))
	return nil
}
