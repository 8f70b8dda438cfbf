package models

import "time"

type Specialty struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"column:nombre;size:100;not null;uniqueIndex" json:"nombre"`
	Description *string `gorm:"column:descripcion;type:text" json:"descripcion"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Specialty) TableName() string { return "especialidades" }
