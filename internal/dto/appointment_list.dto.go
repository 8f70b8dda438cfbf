package dto

import (
	"strings"

	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

// AppointmentListDTO is the compact row used by the client-name search.
type AppointmentListDTO struct {
	ID            uint    `json:"id"`
	RequestedDate string  `json:"fecha_solicitada"`
	RequestedTime string  `json:"hora_solicitada"`
	Status        string  `json:"estado"`
	ClientID      *uint   `json:"cliente_id"`
	ClientName    string  `json:"cliente_nombre"`
	ClientPhone   string  `json:"cliente_telefono"`
	DoctorID      *uint   `json:"medico_id"`
	DoctorName    *string `json:"medico_nombre"`
}

func NewAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentListItem(&aps[i]))
	}
	return out
}

func NewAppointmentListItem(ap *models.Appointment) AppointmentListDTO {
	item := AppointmentListDTO{
		ID:            ap.ID,
		RequestedDate: ap.RequestedDate.Format(timezone.DateLayout),
		RequestedTime: ap.RequestedTime,
		Status:        ap.Status,
		ClientID:      ap.ClientID,
		DoctorID:      ap.DoctorID,
	}
	if ap.Client != nil {
		item.ClientName = fullName(ap.Client.FirstName, ap.Client.LastName)
		item.ClientPhone = ap.Client.Phone
	}
	if ap.Doctor != nil && ap.Doctor.Person != nil {
		name := fullName(ap.Doctor.Person.FirstName, &ap.Doctor.Person.LastName)
		item.DoctorName = &name
	}
	return item
}

func fullName(first string, last *string) string {
	if last == nil {
		return first
	}
	return strings.TrimSpace(first + " " + *last)
}
