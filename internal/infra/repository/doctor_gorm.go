package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/doctor"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type DoctorGormRepository struct {
	t table[models.Doctor]
}

var _ domain.Repository = (*DoctorGormRepository)(nil)

func NewDoctorGormRepository(db *gorm.DB) *DoctorGormRepository {
	return &DoctorGormRepository{t: table[models.Doctor]{
		db:       db,
		ent:      entDoctor,
		policy:   SoftDelete,
		flag:     "activo",
		preloads: []string{"Person", "Specialty"},
	}}
}

func (r *DoctorGormRepository) Create(ctx context.Context, d *models.Doctor) error {
	d.Active = true
	return r.t.create(ctx, d)
}

func (r *DoctorGormRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	return r.t.get(ctx, id)
}

func (r *DoctorGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.Doctor], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if f.ActiveOnly {
			q = q.Where("medicos.activo = ?", true)
		}
		if f.SpecialtyID != nil {
			q = q.Where("medicos.especialidad_id = ?", *f.SpecialtyID)
		}
		return q
	}, opts)
}

func (r *DoctorGormRepository) Update(ctx context.Context, d *models.Doctor) error {
	return r.t.update(ctx, d)
}

func (r *DoctorGormRepository) Delete(ctx context.Context, id uint) error {
	return r.t.delete(ctx, id)
}
