package client

import (
	"context"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	// Query matches nombres, apellidos, telefono or email.
	Query string
}

var SortColumns = map[string]string{
	"id":         "id",
	"nombres":    "nombres",
	"created_at": "created_at",
}

var DefaultSort = query.Sort{Column: "created_at", Desc: true}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.Client], error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error
}
