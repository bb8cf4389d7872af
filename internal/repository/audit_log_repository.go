package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/model"
)

// AuditLogFilter narrows audit log listings. Zero values are ignored.
type AuditLogFilter struct {
	Action string
	Entity string
	Limit  int
}

// AuditLogRepository defines audit log persistence operations.
// Logs are append-only; there is no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error
	CreateBatch(ctx context.Context, logs []model.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, error)
	CountDistinctActorsSince(ctx context.Context, since time.Time) (int64, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository.
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CreateBatch inserts multiple audit log entries at once.
func (r *auditLogRepository) CreateBatch(ctx context.Context, logs []model.AuditLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, 100).Error
}

func (r *auditLogRepository) List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var logs []model.AuditLog
	if err := q.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// CountDistinctActorsSince counts users that performed any logged action in
// the window, which backs the dashboard "active users" metric.
func (r *auditLogRepository) CountDistinctActorsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AuditLog{}).
		Where("created_at >= ?", since).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
