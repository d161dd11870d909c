package listingRepo

import (
	"context"

	"homestay/database"
	"homestay/models"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Listing, int64, error)
	Update(ctx context.Context, listing *models.Listing) error
	// SetRating writes the derived average rating cache. Nil clears it.
	SetRating(ctx context.Context, id string, rating *float64) error
	Delete(ctx context.Context, id string) error
	// AllIDs returns every listing ID, for the rating reconciliation sweep.
	AllIDs(ctx context.Context) ([]string, error)
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo returns a ListingRepository backed by MongoDB.
func NewMongoListingRepo() ListingRepository {
	repo := &mongoListingRepo{coll: database.DB().Collection("listings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("listings: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoListingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}
