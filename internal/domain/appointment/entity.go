package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

// Columns written by each action. Everything else on the row is left alone.
var (
	ConfirmColumns    = []string{"medico_id", "estado", "fecha_confirmada", "hora_confirmada"}
	AttendColumns     = []string{"estado"}
	CancelColumns     = []string{"medico_id", "estado"}
	RescheduleColumns = []string{"fecha_solicitada", "hora_solicitada", "sintomas"}
)

// ===============================
// Domain Actions
// ===============================

func New(clientID *uint, date time.Time, hour string, symptoms *string) *models.Appointment {
	return &models.Appointment{
		ClientID:      clientID,
		RequestedDate: timezone.CalendarDay(date),
		RequestedTime: hour,
		Symptoms:      symptoms,
		Status:        string(InitialStatus()),
	}
}

// Confirm assigns the doctor and stamps the confirmation using now's
// calendar day and wall clock.
func Confirm(ap *models.Appointment, doctorID uint, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	day := timezone.CalendarDay(now)
	clock := now.Format(timezone.ClockLayout)

	ap.DoctorID = &doctorID
	ap.Doctor = nil
	ap.Status = string(StatusConfirmed)
	ap.ConfirmedDate = &day
	ap.ConfirmedTime = &clock
	return nil
}

func Attend(ap *models.Appointment) error {
	if err := CanAttend(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusAttended)
	return nil
}

// Cancel releases the assigned doctor.
func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.DoctorID = nil
	ap.Doctor = nil
	return nil
}

// Changes is a partial reschedule. Nil fields keep their value.
type Changes struct {
	Date     *time.Time
	Hour     *string
	Symptoms *string
}

func (c Changes) Empty() bool {
	return c.Date == nil && c.Hour == nil && c.Symptoms == nil
}

func Reschedule(ap *models.Appointment, ch Changes) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	if ch.Date != nil {
		ap.RequestedDate = timezone.CalendarDay(*ch.Date)
	}
	if ch.Hour != nil {
		ap.RequestedTime = *ch.Hour
	}
	if ch.Symptoms != nil {
		ap.Symptoms = ch.Symptoms
	}
	return nil
}
