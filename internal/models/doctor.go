package models

import "time"

// Médico. Nunca se elimina físicamente: Active=false lo retira del listado público.
type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PersonID uint    `gorm:"column:persona_id;not null;uniqueIndex" json:"persona_id"`
	Person   *Person `gorm:"foreignKey:PersonID;constraint:OnDelete:RESTRICT" json:"persona,omitempty"`

	SpecialtyID uint       `gorm:"column:especialidad_id;not null;index" json:"especialidad_id"`
	Specialty   *Specialty `gorm:"foreignKey:SpecialtyID;constraint:OnDelete:RESTRICT" json:"especialidad,omitempty"`

	Email         *string `gorm:"column:email;size:150;uniqueIndex" json:"email"`
	LicenseNumber *string `gorm:"column:colegiatura;size:50" json:"colegiatura"`
	Active        bool    `gorm:"column:activo;not null;default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Doctor) TableName() string { return "medicos" }
