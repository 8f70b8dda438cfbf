package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

// RescheduleInput is the body of the generic update. Status and doctor are
// carried only so they can be refused: those change through the dedicated
// transitions.
type RescheduleInput struct {
	Date     *string
	Time     *string
	Symptoms *string

	Status   *string
	DoctorID *uint
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewRescheduleAppointment(repo domain.Repository, audit audit.Recorder) *RescheduleAppointment {
	return &RescheduleAppointment{repo: repo, audit: audit}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	appointmentID uint,
	in RescheduleInput,
) (*models.Appointment, error) {

	if in.Status != nil || in.DoctorID != nil {
		return nil, httperr.InvalidTransition(
			"status_change_not_allowed",
			"El estado y el médico se cambian con confirmar, atender o cancelar.",
		)
	}

	var ch domain.Changes
	if in.Date != nil {
		d, err := timezone.ParseDate(*in.Date)
		if err != nil {
			return nil, httperr.InvalidInput("invalid_date", "La fecha debe tener el formato AAAA-MM-DD.", "fecha_solicitada")
		}
		ch.Date = &d
	}
	if in.Time != nil {
		h, err := timezone.ParseClock(*in.Time)
		if err != nil {
			return nil, httperr.InvalidInput("invalid_time", "La hora debe tener el formato HH:MM.", "hora_solicitada")
		}
		ch.Hour = &h
	}
	if in.Symptoms != nil {
		ch.Symptoms = validators.Optional(in.Symptoms)
		if ch.Symptoms == nil {
			empty := ""
			ch.Symptoms = &empty
		}
	}
	if ch.Empty() {
		return nil, httperr.InvalidInput("nothing_to_update", "No se enviaron cambios.")
	}

	ap, err := uc.repo.Mutate(ctx, appointmentID, func(ap *models.Appointment) error {
		if err := domain.Reschedule(ap, ch); err != nil {
			return err
		}
		// blank symptoms clear the column
		if ap.Symptoms != nil && *ap.Symptoms == "" {
			ap.Symptoms = nil
		}
		return nil
	}, domain.RescheduleColumns...)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, event(actor, "appointment_rescheduled", ap.ID, map[string]any{
		"fecha_solicitada": ap.RequestedDate.Format(timezone.DateLayout),
		"hora_solicitada":  ap.RequestedTime,
	}))

	return ap, nil
}
