package profileRepo

import (
	"context"
	"fmt"
	"time"

	"homestay/database"
	"homestay/models"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type mongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo returns a ProfileRepository backed by MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	repo := &mongoProfileRepo{coll: database.DB().Collection("profiles")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("profiles: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *mongoProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("profile", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *mongoProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", profile.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("profile", profile.ID)
	}
	return nil
}

func (r *mongoProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete profile for user %s: %w", userID, err)
	}
	return nil
}
