package specialty

import (
	"context"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	Query string
}

var SortColumns = map[string]string{
	"id":     "id",
	"nombre": "nombre",
}

var DefaultSort = query.Sort{Column: "nombre"}

// Seed is the catalogue every installation starts with.
var Seed = []string{
	"Medicina General",
	"Pediatría",
	"Ginecología",
	"Cardiología",
	"Traumatología",
}

type Repository interface {
	Create(ctx context.Context, s *models.Specialty) error
	GetByID(ctx context.Context, id uint) (*models.Specialty, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.Specialty], error)
	Update(ctx context.Context, s *models.Specialty) error
	// Delete fails with Conflict while any doctor references the specialty.
	Delete(ctx context.Context, id uint) error
}
