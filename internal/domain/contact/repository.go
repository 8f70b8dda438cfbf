package contact

import (
	"context"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	ClientID *uint
}

var SortColumns = map[string]string{
	"id":         "contacto.id",
	"created_at": "contacto.created_at",
}

var DefaultSort = query.Sort{Column: "contacto.created_at", Desc: true}

type Repository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.ContactMessage], error)
	Update(ctx context.Context, m *models.ContactMessage) error
	Delete(ctx context.Context, id uint) error
}
