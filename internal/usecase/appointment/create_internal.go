package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

type CreateInternalInput struct {
	ClientID uint
	Date     string
	Time     string
	Symptoms string
}

// CreateInternalAppointment books a pending appointment for an existing
// client from the staff panel.
type CreateInternalAppointment struct {
	repo     domain.Repository
	audit    audit.Recorder
	observer Observer
}

func NewCreateInternalAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	observer Observer,
) *CreateInternalAppointment {
	return &CreateInternalAppointment{repo: repo, audit: audit, observer: observer}
}

func (uc *CreateInternalAppointment) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	in CreateInternalInput,
) (*models.Appointment, error) {

	missing := validators.Missing(
		[2]string{"fecha_solicitada", in.Date},
		[2]string{"hora_solicitada", in.Time},
	)
	if in.ClientID == 0 {
		missing = append([]string{"cliente_id"}, missing...)
	}
	if len(missing) > 0 {
		return nil, httperr.InvalidInput("invalid_input", "Datos obligatorios incompletos.", missing...)
	}

	date, hour, err := parseSchedule(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	clientID := in.ClientID
	ap := domain.New(&clientID, date, hour, validators.OptionalString(in.Symptoms))

	// unknown cliente_id surfaces as InvalidReference from the FK
	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, event(actor, "appointment_created", ap.ID, map[string]any{
		"cliente_id": clientID,
	}))
	observe(uc.observer, ap.Status)

	return ap, nil
}
