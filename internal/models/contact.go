package models

import "time"

type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"cliente,omitempty"`

	Subject string `gorm:"column:asunto;size:200;not null" json:"asunto"`
	Message string `gorm:"column:mensaje;type:text;not null" json:"mensaje"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contacto" }
