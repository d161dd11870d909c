package reviewRepo

import (
	"context"

	"homestay/database"
	"homestay/models"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// ListActiveByListing returns every active review of a listing; the
	// rating aggregator averages over these.
	ListActiveByListing(ctx context.Context, listingID string) ([]models.Review, error)
	Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Review, int64, error)
	Delete(ctx context.Context, id string) error
	// DeleteByCustomer removes all reviews authored by the given user.
	DeleteByCustomer(ctx context.Context, customerID string) (int64, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	repo := &mongoReviewRepo{coll: database.DB().Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("reviews: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "listingId", Value: 1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}
