package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string

	Date     string
	Time     string
	Symptoms string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicAppointment registers a walk-in client and a pending
// appointment for them in one transaction.
type CreatePublicAppointment struct {
	repo     domain.Repository
	audit    audit.Recorder
	observer Observer
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	observer Observer,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:     repo,
		audit:    audit,
		observer: observer,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obligatorios
	// --------------------------------------------------
	if missing := validators.Missing(
		[2]string{"nombres", in.FirstName},
		[2]string{"telefono", in.Phone},
		[2]string{"fecha_solicitada", in.Date},
		[2]string{"hora_solicitada", in.Time},
	); len(missing) > 0 {
		return nil, httperr.InvalidInput("invalid_input", "Datos obligatorios incompletos.", missing...)
	}

	// --------------------------------------------------
	// 2. Fecha / hora
	// --------------------------------------------------
	date, hour, err := parseSchedule(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Cliente + cita
	// --------------------------------------------------
	client := &models.Client{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  validators.OptionalString(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     validators.OptionalString(in.Email),
	}

	ap := domain.New(nil, date, hour, validators.OptionalString(in.Symptoms))

	if err := uc.repo.CreateWithClient(ctx, client, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(ctx, event(nil, "appointment_requested", ap.ID, map[string]any{
		"cliente_id": client.ID,
		"origen":     "publico",
	}))
	observe(uc.observer, ap.Status)

	return ap, nil
}
