package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/history"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

// HistoryGormRepository is append-only.
type HistoryGormRepository struct {
	t table[models.HistoryNote]
}

var _ domain.Repository = (*HistoryGormRepository)(nil)

func NewHistoryGormRepository(db *gorm.DB) *HistoryGormRepository {
	return &HistoryGormRepository{t: table[models.HistoryNote]{
		db:  db,
		ent: entHistory,
		preloads: []string{
			"Appointment",
			"Appointment.Client",
			"Doctor",
			"Doctor.Person",
		},
	}}
}

func (r *HistoryGormRepository) Create(ctx context.Context, n *models.HistoryNote) error {
	return r.t.create(ctx, n)
}

func (r *HistoryGormRepository) GetByID(ctx context.Context, id uint) (*models.HistoryNote, error) {
	return r.t.get(ctx, id)
}

func (r *HistoryGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.HistoryNote], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if f.AppointmentID != nil {
			q = q.Where("historial_citas.cita_id = ?", *f.AppointmentID)
		}
		if f.ClientID != nil {
			q = q.Joins("JOIN citas ON citas.id = historial_citas.cita_id").
				Where("citas.cliente_id = ?", *f.ClientID)
		}
		return q
	}, opts)
}
