package models

import (
	"time"

	"github.com/google/uuid"
)

// Usuario interno. El ID es el subject emitido por el proveedor de identidad.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PersonID *uint   `gorm:"column:persona_id;index" json:"persona_id"`
	Person   *Person `gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL" json:"persona,omitempty"`

	Role string `gorm:"column:role;size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }
