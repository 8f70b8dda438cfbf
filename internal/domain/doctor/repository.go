package doctor

import (
	"context"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	SpecialtyID *uint
	ActiveOnly  bool
}

var SortColumns = map[string]string{
	"id":              "medicos.id",
	"especialidad_id": "medicos.especialidad_id",
	"created_at":      "medicos.created_at",
}

var DefaultSort = query.Sort{Column: "medicos.id"}

type Repository interface {
	Create(ctx context.Context, d *models.Doctor) error
	// GetByID includes inactive doctors, with persona and especialidad.
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.Doctor], error)
	Update(ctx context.Context, d *models.Doctor) error
	// Delete deactivates. Rows are never removed.
	Delete(ctx context.Context, id uint) error
}
