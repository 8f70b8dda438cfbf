package appointment

import "github.com/BruksfildServices01/clinic-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusAttended  Status = "atendida"
	StatusCancelled Status = "cancelada"
)

// AllStatuses is the reporting order.
var AllStatuses = []Status{StatusPending, StatusConfirmed, StatusAttended, StatusCancelled}

// OpenStatuses are the states an appointment can still move out of.
var OpenStatuses = []Status{StatusPending, StatusConfirmed}

func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s Status) Open() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanConfirm: solo citas pendientes se confirman
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.InvalidTransition("invalid_state", "Solo se pueden confirmar citas pendientes.")
	}
	return nil
}

// CanAttend: solo citas confirmadas se atienden
func CanAttend(current Status) error {
	if current != StatusConfirmed {
		return httperr.InvalidTransition("invalid_state", "Solo se pueden atender citas confirmadas.")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.Open() {
		return httperr.InvalidTransition("invalid_state", "Solo se pueden cancelar citas pendientes o confirmadas.")
	}
	return nil
}

func CanReschedule(current Status) error {
	if !current.Open() {
		return httperr.InvalidTransition("invalid_state", "No se puede modificar una cita atendida o cancelada.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
