package models

import "time"

// Nota clínica asociada a una cita. Inmutable una vez creada.
type HistoryNote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint         `gorm:"column:cita_id;not null;index" json:"cita_id"`
	Appointment   *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:RESTRICT" json:"cita,omitempty"`

	DoctorID *uint   `gorm:"column:medico_id;index" json:"medico_id"`
	Doctor   *Doctor `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"medico,omitempty"`

	Diagnosis *string `gorm:"column:diagnostico;type:text" json:"diagnostico"`
	Notes     *string `gorm:"column:observaciones;type:text" json:"observaciones"`

	CreatedAt time.Time `json:"created_at"`
}

func (HistoryNote) TableName() string { return "historial_citas" }
