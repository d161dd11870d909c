package auditRepo

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

// AuditRepository defines methods for the append-only audit collection.
// There is deliberately no update or delete: audit rows are immutable.
type AuditRepository interface {
	Create(ctx context.Context, audit *models.Audit) error
	Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Audit, int64, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns an AuditRepository backed by MongoDB.
func NewMongoAuditRepo() AuditRepository {
	repo := &mongoAuditRepo{coll: database.DB().Collection("audits")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("audits: failed to create indexes: %v", err)
	}
	return repo
}

func (r *mongoAuditRepo) Create(ctx context.Context, audit *models.Audit) error {
	audit.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, audit); err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}
	return nil
}

func (r *mongoAuditRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Audit, int64, error) {
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audits: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []models.Audit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, 0, fmt.Errorf("failed to decode audits: %w", err)
	}
	return audits, total, nil
}
