package models

import "time"

// Persona registrada en la clínica (staff o médico).
type Person struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string  `gorm:"column:nombres;size:100;not null" json:"nombres"`
	LastName  string  `gorm:"column:apellidos;size:100;not null" json:"apellidos"`
	DNI       string  `gorm:"column:dni;size:20;not null;uniqueIndex" json:"dni"`
	Phone     *string `gorm:"column:telefono;size:20" json:"telefono"`
	Email     *string `gorm:"column:email;size:150" json:"email"`
	Address   *string `gorm:"column:direccion;size:255" json:"direccion"`
	PhotoURL  *string `gorm:"column:foto_url;size:500" json:"foto_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string { return "personas" }
