package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/contact"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type ContactGormRepository struct {
	t table[models.ContactMessage]
}

var _ domain.Repository = (*ContactGormRepository)(nil)

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{t: table[models.ContactMessage]{
		db:       db,
		ent:      entContact,
		policy:   HardDelete,
		preloads: []string{"Client"},
	}}
}

func (r *ContactGormRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	return r.t.create(ctx, m)
}

func (r *ContactGormRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	return r.t.get(ctx, id)
}

func (r *ContactGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.ContactMessage], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if f.ClientID != nil {
			q = q.Where("contacto.cliente_id = ?", *f.ClientID)
		}
		return q
	}, opts)
}

func (r *ContactGormRepository) Update(ctx context.Context, m *models.ContactMessage) error {
	return r.t.update(ctx, m)
}

func (r *ContactGormRepository) Delete(ctx context.Context, id uint) error {
	return r.t.delete(ctx, id)
}
