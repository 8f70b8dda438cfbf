package models

import "time"

// Cita. Las fechas son días de calendario guardados como medianoche UTC;
// las horas viajan como "HH:MM".
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `gorm:"column:cliente_id;index" json:"cliente_id"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"cliente,omitempty"`

	DoctorID *uint   `gorm:"column:medico_id;index" json:"medico_id"`
	Doctor   *Doctor `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"medico,omitempty"`

	RequestedDate time.Time `gorm:"column:fecha_solicitada;type:date;not null;index" json:"fecha_solicitada"`
	RequestedTime string    `gorm:"column:hora_solicitada;size:5;not null" json:"hora_solicitada"`

	ConfirmedDate *time.Time `gorm:"column:fecha_confirmada;type:date" json:"fecha_confirmada"`
	ConfirmedTime *string    `gorm:"column:hora_confirmada;size:5" json:"hora_confirmada"`

	Symptoms *string `gorm:"column:sintomas;type:text" json:"sintomas"`
	Status   string  `gorm:"column:estado;size:20;not null;index" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "citas" }
