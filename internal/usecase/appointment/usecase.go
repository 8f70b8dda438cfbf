package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

const entityName = "cita"

// Observer is notified of every status an appointment is written with.
type Observer interface {
	Transition(estado string)
}

func observe(o Observer, estado string) {
	if o != nil {
		o.Transition(estado)
	}
}

func event(actor *uuid.UUID, action string, id uint, meta any) audit.Event {
	return audit.Event{
		UserID:   actor,
		Action:   action,
		Entity:   entityName,
		EntityID: &id,
		Metadata: meta,
	}
}

// parseSchedule validates a requested YYYY-MM-DD date and HH:MM time.
func parseSchedule(date, hour string) (time.Time, string, error) {
	d, err := timezone.ParseDate(date)
	if err != nil {
		return time.Time{}, "", httperr.InvalidInput("invalid_date", "La fecha debe tener el formato AAAA-MM-DD.", "fecha_solicitada")
	}
	h, err := timezone.ParseClock(hour)
	if err != nil {
		return time.Time{}, "", httperr.InvalidInput("invalid_time", "La hora debe tener el formato HH:MM.", "hora_solicitada")
	}
	return d, h, nil
}
