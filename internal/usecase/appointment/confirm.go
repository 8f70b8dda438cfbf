package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	doctors  domain.DoctorFinder
	clock    *timezone.Clock
	audit    audit.Recorder
	observer Observer
}

func NewConfirmAppointment(
	repo domain.Repository,
	doctors domain.DoctorFinder,
	clock *timezone.Clock,
	audit audit.Recorder,
	observer Observer,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		doctors:  doctors,
		clock:    clock,
		audit:    audit,
		observer: observer,
	}
}

// Execute moves a pending appointment to confirmada and assigns the doctor.
// The doctor must exist and be active.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	appointmentID uint,
	doctorID uint,
) (*models.Appointment, error) {

	if doctorID == 0 {
		return nil, httperr.InvalidInput("invalid_input", "medico_id es obligatorio.", "medico_id")
	}

	ap, err := uc.repo.Mutate(ctx, appointmentID, func(ap *models.Appointment) error {
		if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
			return err
		}

		doc, err := uc.doctors.GetByID(ctx, doctorID)
		if err != nil {
			if httperr.Is(err, httperr.KindNotFound) {
				return httperr.InvalidReference("doctor_not_found", "El médico indicado no existe.")
			}
			return err
		}
		if !doc.Active {
			return httperr.InvalidReference("doctor_inactive", "El médico indicado no está activo.")
		}

		return domain.Confirm(ap, doctorID, uc.clock.Now())
	}, domain.ConfirmColumns...)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, event(actor, "appointment_confirmed", ap.ID, map[string]any{
		"medico_id": doctorID,
	}))
	observe(uc.observer, ap.Status)

	return ap, nil
}
