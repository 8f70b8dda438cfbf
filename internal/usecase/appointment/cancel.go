package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type CancelAppointment struct {
	repo     domain.Repository
	audit    audit.Recorder
	observer Observer
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	observer Observer,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		audit:    audit,
		observer: observer,
	}
}

// Execute cancels a pending or confirmed appointment and releases the doctor.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	appointmentID uint,
) (*models.Appointment, error) {

	var released *uint
	ap, err := uc.repo.Mutate(ctx, appointmentID, func(ap *models.Appointment) error {
		released = ap.DoctorID
		return domain.Cancel(ap)
	}, domain.CancelColumns...)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, event(actor, "appointment_cancelled", ap.ID, map[string]any{
		"medico_liberado": released,
	}))
	observe(uc.observer, ap.Status)

	return ap, nil
}
