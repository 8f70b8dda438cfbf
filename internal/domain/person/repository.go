package person

import (
	"context"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	// Query matches nombres, apellidos or dni.
	Query string
}

var SortColumns = map[string]string{
	"id":         "id",
	"nombres":    "nombres",
	"apellidos":  "apellidos",
	"dni":        "dni",
	"created_at": "created_at",
}

var DefaultSort = query.Sort{Column: "id", Desc: true}

type Repository interface {
	Create(ctx context.Context, p *models.Person) error
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	FindByDNI(ctx context.Context, dni string) (*models.Person, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.Person], error)
	Update(ctx context.Context, p *models.Person) error
	Delete(ctx context.Context, id uint) error
}
