package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
)

// DeleteAppointment removes the row. Route access restricts it to admins.
type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteAppointment(repo domain.Repository, audit audit.Recorder) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, actor *uuid.UUID, appointmentID uint) error {
	if err := uc.repo.Delete(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, event(actor, "appointment_deleted", appointmentID, nil))
	return nil
}
