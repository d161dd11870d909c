package listingRepo

import (
	"context"
	"fmt"
	"time"

	"homestay/models"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const indexTimeout = 10 * time.Second

func (r *mongoListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (r *mongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("listing", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	return &listing, nil
}

func (r *mongoListingRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Listing, int64, error) {
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, total, nil
}

func (r *mongoListingRepo) Update(ctx context.Context, listing *models.Listing) error {
	listing.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": listing.ID}, listing)
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", listing.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("listing", listing.ID)
	}
	return nil
}

func (r *mongoListingRepo) SetRating(ctx context.Context, id string, rating *float64) error {
	update := bson.M{"$set": bson.M{"rating": rating, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set rating on listing %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("listing", id)
	}
	return nil
}

func (r *mongoListingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("listing", id)
	}
	return nil
}

func (r *mongoListingRepo) AllIDs(ctx context.Context) ([]string, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list listing ids: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode listing ids: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
