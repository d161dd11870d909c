package audit

import (
	"context"

	auditRepo "homestay/database/repository/audit"
	"homestay/models"
	"homestay/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Recorder appends immutable audit events. Record is best-effort: a failed
// write must never abort the business operation that triggered it, so it
// reports nothing upward.
type Recorder interface {
	Record(ctx context.Context, entry models.Audit)
	ListRecent(ctx context.Context, filter bson.M, limit, skip int64) (*models.Page[models.Audit], error)
}

// DefaultRecorder is the production implementation.
type DefaultRecorder struct {
	Repo auditRepo.AuditRepository
}

// Record appends one audit row. Failures are logged and swallowed.
func (r *DefaultRecorder) Record(ctx context.Context, entry models.Audit) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ServiceName == "" {
		entry.ServiceName = "bookings"
	}

	if err := r.Repo.Create(ctx, &entry); err != nil {
		utils.GetLogger().Warn("audit write failed",
			zap.String("action", entry.Action),
			zap.String("bookingId", entry.BookingID),
			zap.Error(err))
	}
}

// ListRecent returns a page of audit events, newest first. Backs the admin
// activity feed.
func (r *DefaultRecorder) ListRecent(ctx context.Context, filter bson.M, limit, skip int64) (*models.Page[models.Audit], error) {
	if filter == nil {
		filter = bson.M{}
	}
	audits, total, err := r.Repo.Find(ctx, filter, limit, skip)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Audit]{Total: total, Limit: limit, Skip: skip, Data: audits}, nil
}
