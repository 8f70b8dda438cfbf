package history

import (
	"context"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	AppointmentID *uint
	ClientID      *uint
}

var SortColumns = map[string]string{
	"id":         "historial_citas.id",
	"created_at": "historial_citas.created_at",
}

var DefaultSort = query.Sort{Column: "historial_citas.created_at", Desc: true}

// Repository has no update or delete: notes are append-only.
type Repository interface {
	Create(ctx context.Context, n *models.HistoryNote) error
	GetByID(ctx context.Context, id uint) (*models.HistoryNote, error)
	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.HistoryNote], error)
}
