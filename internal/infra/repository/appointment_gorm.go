package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

type AppointmentGormRepository struct {
	t table[models.Appointment]
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{t: table[models.Appointment]{
		db:     db,
		ent:    entAppointment,
		policy: HardDelete,
		preloads: []string{
			"Client",
			"Doctor",
			"Doctor.Person",
			"Doctor.Specialty",
		},
	}}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return r.t.create(ctx, ap)
}

func (r *AppointmentGormRepository) CreateWithClient(
	ctx context.Context,
	client *models.Client,
	ap *models.Appointment,
) error {

	err := r.t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(client).Error; err != nil {
			return translate(err, opWrite, entClient)
		}

		ap.ClientID = &client.ID
		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			return translate(err, opWrite, entAppointment)
		}
		return nil
	})
	if err != nil {
		return err
	}

	ap.Client = client
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return r.t.get(ctx, id)
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.Appointment], error) {
	return r.t.list(ctx, func(q *gorm.DB) *gorm.DB {
		if f.Status != "" {
			q = q.Where("citas.estado = ?", string(f.Status))
		}
		if f.DoctorID != nil {
			q = q.Where("citas.medico_id = ?", *f.DoctorID)
		}
		if f.ClientID != nil {
			q = q.Where("citas.cliente_id = ?", *f.ClientID)
		}
		if f.Date != nil {
			q = q.Where("citas.fecha_solicitada = ?", f.Date.Format(timezone.DateLayout))
		}
		return q
	}, opts)
}

// SearchByClientName matches the client's nombres or apellidos, newest first.
func (r *AppointmentGormRepository) SearchByClientName(
	ctx context.Context,
	term string,
	limit int,
) ([]models.Appointment, error) {

	if strings.TrimSpace(term) == "" {
		return []models.Appointment{}, nil
	}

	like := likePattern(term)

	var items []models.Appointment
	if err := r.t.session(ctx).
		Joins("JOIN clientes_publicos ON clientes_publicos.id = citas.cliente_id").
		Where("(clientes_publicos.nombres ILIKE ? OR clientes_publicos.apellidos ILIKE ?)", like, like).
		Order("citas.created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, translate(err, opRead, entAppointment)
	}
	return items, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

// Mutate locks the row, lets fn apply a domain action and writes back only
// the listed columns, all within one transaction.
func (r *AppointmentGormRepository) Mutate(
	ctx context.Context,
	id uint,
	fn domain.MutateFunc,
	columns ...string,
) (*models.Appointment, error) {

	cols := make([]string, 0, len(columns)+1)
	cols = append(cols, columns...)
	cols = append(cols, "updated_at")

	err := r.t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, "id = ?", id).Error; err != nil {
			return err
		}

		if err := fn(&ap); err != nil {
			return err
		}

		ap.UpdatedAt = time.Now()
		return tx.Model(&ap).Select(cols).Updates(&ap).Error
	})
	if err != nil {
		return nil, translate(err, opWrite, entAppointment)
	}

	return r.GetByID(ctx, id)
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	return r.t.delete(ctx, id)
}
