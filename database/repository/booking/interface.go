package bookingRepo

import (
	"context"

	"homestay/database"
	"homestay/models"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Update replaces the stored document with the given booking.
	Update(ctx context.Context, booking *models.Booking) error
	// Find runs a filtered, paginated query. A non-nil projection limits the
	// returned fields (the public ratings display uses this).
	Find(ctx context.Context, filter bson.M, projection bson.M, limit, skip int64) ([]models.Booking, int64, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every booking where the user appears as customer
	// or provider. Returns the number of removed documents.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{coll: database.DB().Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("bookings: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "listingId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}
