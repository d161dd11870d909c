package staffRepo

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

// StaffRepository defines methods for staff roster data access.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.StaffInfo) error
	GetByID(ctx context.Context, id string) (*models.StaffInfo, error)
	Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.StaffInfo, int64, error)
	Update(ctx context.Context, staff *models.StaffInfo) error
	Delete(ctx context.Context, id string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a StaffRepository backed by MongoDB.
func NewMongoStaffRepo() StaffRepository {
	repo := &mongoStaffRepo{coll: database.DB().Collection("staffinfo")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("staffinfo: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoStaffRepo) Create(ctx context.Context, staff *models.StaffInfo) error {
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffInfo, error) {
	var staff models.StaffInfo
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("staff member", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff member %s: %w", id, err)
	}
	return &staff, nil
}

func (r *mongoStaffRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.StaffInfo, int64, error) {
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.StaffInfo
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, 0, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, total, nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, staff *models.StaffInfo) error {
	staff.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": staff.ID}, staff)
	if err != nil {
		return fmt.Errorf("failed to update staff member %s: %w", staff.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("staff member", staff.ID)
	}
	return nil
}

func (r *mongoStaffRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("staff member", id)
	}
	return nil
}
