package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	Role string
}

var SortColumns = map[string]string{
	"created_at": "created_at",
	"role":       "role",
}

var DefaultSort = query.Sort{Column: "created_at", Desc: true}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	// GetByID loads the user with its persona.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.User], error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
