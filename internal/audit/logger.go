package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

// Logger persists audit entries in audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, entry *models.AuditLog) error {
	return l.db.WithContext(ctx).Create(entry).Error
}

type Filter struct {
	Action string
	Entity string
	UserID *uuid.UUID
	From   *time.Time
	To     *time.Time
}

func (l *Logger) List(ctx context.Context, f Filter, page query.Page) (query.Result[models.AuditLog], error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return query.Result[models.AuditLog]{}, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&logs).Error; err != nil {
		return query.Result[models.AuditLog]{}, err
	}

	return query.Result[models.AuditLog]{Items: logs, Total: total}, nil
}
