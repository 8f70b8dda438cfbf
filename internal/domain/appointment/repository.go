package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Filter struct {
	Status   Status
	DoctorID *uint
	ClientID *uint
	Date     *time.Time
}

// SortColumns maps public sort keys to columns.
var SortColumns = map[string]string{
	"id":               "citas.id",
	"fecha_solicitada": "citas.fecha_solicitada",
	"hora_solicitada":  "citas.hora_solicitada",
	"estado":           "citas.estado",
	"created_at":       "citas.created_at",
}

var DefaultSort = query.Sort{Column: "citas.fecha_solicitada"}

// MutateFunc receives the locked row. Returning an error aborts the write.
type MutateFunc func(ap *models.Appointment) error

type Repository interface {
	// -------- Create --------
	Create(ctx context.Context, ap *models.Appointment) error

	// CreateWithClient stores both rows atomically and links ap to client.
	CreateWithClient(ctx context.Context, client *models.Client, ap *models.Appointment) error

	// -------- Read --------
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)

	List(ctx context.Context, f Filter, opts query.Options) (query.Result[models.Appointment], error)

	SearchByClientName(ctx context.Context, term string, limit int) ([]models.Appointment, error)

	// -------- State change --------
	Mutate(ctx context.Context, id uint, fn MutateFunc, columns ...string) (*models.Appointment, error)

	Delete(ctx context.Context, id uint) error
}

// DoctorFinder is what confirmation needs to know about doctors.
type DoctorFinder interface {
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
}
