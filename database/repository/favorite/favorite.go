package favoriteRepo

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

// FavoriteRepository defines methods for saved-listing data access.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	GetByUserAndListing(ctx context.Context, userID, listingID string) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo returns a FavoriteRepository backed by MongoDB.
func NewMongoFavoriteRepo() FavoriteRepository {
	repo := &mongoFavoriteRepo{coll: database.DB().Collection("favorites")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "listingId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("favorites: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoFavoriteRepo) Create(ctx context.Context, favorite *models.Favorite) error {
	favorite.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, favorite); err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

func (r *mongoFavoriteRepo) GetByUserAndListing(ctx context.Context, userID, listingID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "listingId": listingID}).Decode(&favorite)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("favorite", listingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorite: %w", err)
	}
	return &favorite, nil
}

func (r *mongoFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}

func (r *mongoFavoriteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete favorite %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("favorite", id)
	}
	return nil
}

func (r *mongoFavoriteRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorites for user %s: %w", userID, err)
	}
	return res.DeletedCount, nil
}
