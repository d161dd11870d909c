package rating

import (
	"context"

	listingRepo "homestay/database/repository/listing"
	reviewRepo "homestay/database/repository/review"
	"homestay/utils"

	"go.uber.org/zap"
)

// Aggregator keeps each listing's cached average rating in sync with the
// reviews collection.
type Aggregator interface {
	Recompute(ctx context.Context, listingID string) error
	RecomputeAll(ctx context.Context) error
}

// DefaultAggregator recomputes from source rows on every run. There is no
// incremental counter to drift: concurrent recomputes race benignly and the
// last writer wins with a correct value.
type DefaultAggregator struct {
	Reviews  reviewRepo.ReviewRepository
	Listings listingRepo.ListingRepository
}

// Recompute averages the active reviews of a listing and writes the result
// into the listing's rating cache. Zero reviews clears the cache to null.
func (a *DefaultAggregator) Recompute(ctx context.Context, listingID string) error {
	reviews, err := a.Reviews.ListActiveByListing(ctx, listingID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		return a.Listings.SetRating(ctx, listingID, nil)
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return a.Listings.SetRating(ctx, listingID, &avg)
}

// RecomputeAll sweeps every listing. Used by the reconciliation worker;
// individual failures are logged and the sweep continues.
func (a *DefaultAggregator) RecomputeAll(ctx context.Context) error {
	ids, err := a.Listings.AllIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := a.Recompute(ctx, id); err != nil {
			utils.GetLogger().Warn("rating recompute failed",
				zap.String("listingId", id), zap.Error(err))
		}
	}
	return nil
}
