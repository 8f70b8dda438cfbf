package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/user"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type UserGormRepository struct {
	t table[models.User]
}

var _ domain.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{t: table[models.User]{
		db:       db,
		ent:      entUser,
		policy:   HardDelete,
		preloads: []string{"Person"},
	}}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return r.t.create(ctx, u)
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.t.get(ctx, id)
}

func (r *UserGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.User], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if f.Role != "" {
			q = q.Where("role = ?", f.Role)
		}
		return q
	}, opts)
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.t.update(ctx, u)
}

func (r *UserGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.t.delete(ctx, id)
}
