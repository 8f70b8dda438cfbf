package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/specialty"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type SpecialtyGormRepository struct {
	t table[models.Specialty]
}

var _ domain.Repository = (*SpecialtyGormRepository)(nil)

func NewSpecialtyGormRepository(db *gorm.DB) *SpecialtyGormRepository {
	return &SpecialtyGormRepository{t: table[models.Specialty]{db: db, ent: entSpecialty, policy: HardDelete}}
}

func (r *SpecialtyGormRepository) Create(ctx context.Context, s *models.Specialty) error {
	return r.t.create(ctx, s)
}

func (r *SpecialtyGormRepository) GetByID(ctx context.Context, id uint) (*models.Specialty, error) {
	return r.t.get(ctx, id)
}

func (r *SpecialtyGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.Specialty], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if strings.TrimSpace(f.Query) != "" {
			q = q.Where("nombre ILIKE ?", likePattern(f.Query))
		}
		return q
	}, opts)
}

func (r *SpecialtyGormRepository) Update(ctx context.Context, s *models.Specialty) error {
	return r.t.update(ctx, s)
}

// Delete checks for referencing doctors first so the common case gets a
// clear message; the RESTRICT constraint still covers concurrent inserts.
func (r *SpecialtyGormRepository) Delete(ctx context.Context, id uint) error {
	var inUse int64
	if err := r.t.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("especialidad_id = ?", id).
		Count(&inUse).Error; err != nil {
		return translate(err, opRead, entSpecialty)
	}
	if inUse > 0 {
		return httperr.Conflict("specialty_in_use", "La especialidad tiene médicos asignados.")
	}
	return r.t.delete(ctx, id)
}

// SeedSpecialties inserts the default catalogue, skipping existing names.
func SeedSpecialties(ctx context.Context, db *gorm.DB, names []string) error {
	rows := make([]models.Specialty, 0, len(names))
	for _, n := range names {
		rows = append(rows, models.Specialty{Name: n})
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "nombre"}}, DoNothing: true}).
		Create(&rows).Error
}
