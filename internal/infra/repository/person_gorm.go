package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/person"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type PersonGormRepository struct {
	t table[models.Person]
}

var _ domain.Repository = (*PersonGormRepository)(nil)

func NewPersonGormRepository(db *gorm.DB) *PersonGormRepository {
	return &PersonGormRepository{t: table[models.Person]{db: db, ent: entPerson, policy: HardDelete}}
}

func (r *PersonGormRepository) Create(ctx context.Context, p *models.Person) error {
	return r.t.create(ctx, p)
}

func (r *PersonGormRepository) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	return r.t.get(ctx, id)
}

func (r *PersonGormRepository) FindByDNI(ctx context.Context, dni string) (*models.Person, error) {
	var p models.Person
	if err := r.t.db.WithContext(ctx).Where("dni = ?", strings.TrimSpace(dni)).First(&p).Error; err != nil {
		return nil, translate(err, opRead, entPerson)
	}
	return &p, nil
}

func (r *PersonGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.Person], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if strings.TrimSpace(f.Query) != "" {
			like := likePattern(f.Query)
			q = q.Where("(nombres ILIKE ? OR apellidos ILIKE ? OR dni ILIKE ?)", like, like, like)
		}
		return q
	}, opts)
}

func (r *PersonGormRepository) Update(ctx context.Context, p *models.Person) error {
	return r.t.update(ctx, p)
}

func (r *PersonGormRepository) Delete(ctx context.Context, id uint) error {
	return r.t.delete(ctx, id)
}
