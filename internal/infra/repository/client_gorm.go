package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/client"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type ClientGormRepository struct {
	t table[models.Client]
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{t: table[models.Client]{db: db, ent: entClient, policy: HardDelete}}
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.t.create(ctx, c)
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	return r.t.get(ctx, id)
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.Client], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if strings.TrimSpace(f.Query) != "" {
			like := likePattern(f.Query)
			q = q.Where(
				"(nombres ILIKE ? OR apellidos ILIKE ? OR telefono ILIKE ? OR email ILIKE ?)",
				like, like, like, like,
			)
		}
		return q
	}, opts)
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	return r.t.update(ctx, c)
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	return r.t.delete(ctx, id)
}
