package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type AttendAppointment struct {
	repo     domain.Repository
	audit    audit.Recorder
	observer Observer
}

func NewAttendAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	observer Observer,
) *AttendAppointment {
	return &AttendAppointment{repo: repo, audit: audit, observer: observer}
}

func (uc *AttendAppointment) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.Mutate(ctx, appointmentID, domain.Attend, domain.AttendColumns...)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, event(actor, "appointment_attended", ap.ID, nil))
	observe(uc.observer, ap.Status)

	return ap, nil
}
