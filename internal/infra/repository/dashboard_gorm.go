package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/dashboard"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

var _ domain.Reader = (*DashboardGormRepository)(nil)

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

type bucket struct {
	Key   string
	Total int64
}

func (r *DashboardGormRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("estado AS key, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error; err != nil {
		return nil, translate(err, opRead, entAppointment)
	}
	return toMap(rows), nil
}

func (r *DashboardGormRepository) CountRequestedBetween(
	ctx context.Context,
	from, to time.Time,
) (int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("fecha_solicitada >= ? AND fecha_solicitada < ?",
			from.Format(timezone.DateLayout), to.Format(timezone.DateLayout)).
		Count(&total).Error; err != nil {
		return 0, translate(err, opRead, entAppointment)
	}
	return total, nil
}

func (r *DashboardGormRepository) CountPerRequestedDay(
	ctx context.Context,
	from, to time.Time,
) (map[string]int64, error) {

	var rows []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("to_char(fecha_solicitada, 'YYYY-MM-DD') AS key, COUNT(*) AS total").
		Where("fecha_solicitada >= ? AND fecha_solicitada < ?",
			from.Format(timezone.DateLayout), to.Format(timezone.DateLayout)).
		Group("fecha_solicitada").
		Scan(&rows).Error; err != nil {
		return nil, translate(err, opRead, entAppointment)
	}
	return toMap(rows), nil
}

func (r *DashboardGormRepository) Upcoming(
	ctx context.Context,
	from time.Time,
	statuses []string,
	limit int,
) ([]models.Appointment, error) {

	var items []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Doctor").
		Preload("Doctor.Person").
		Preload("Doctor.Specialty").
		Where("fecha_solicitada >= ? AND estado IN ?", from.Format(timezone.DateLayout), statuses).
		Order("fecha_solicitada ASC").
		Order("hora_solicitada ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, translate(err, opRead, entAppointment)
	}
	return items, nil
}

func toMap(rows []bucket) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Total
	}
	return out
}
