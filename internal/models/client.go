package models

import "time"

// Cliente público, sin cuenta. Se crea desde los formularios de la web.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string  `gorm:"column:nombres;size:100;not null" json:"nombres"`
	LastName  *string `gorm:"column:apellidos;size:100" json:"apellidos"`
	Phone     string  `gorm:"column:telefono;size:20;not null" json:"telefono"`
	Email     *string `gorm:"column:email;size:150" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clientes_publicos" }
