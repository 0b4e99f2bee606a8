package models

import (
	"time"

	"github.com/google/uuid"
)

type UserAddress struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`

	Label        string  `gorm:"size:50;not null" json:"label"`
	AddressLine1 string  `gorm:"size:255;not null" json:"address_line_1"`
	AddressLine2 *string `gorm:"size:255" json:"address_line_2"`
	City         string  `gorm:"size:100;not null" json:"city"`
	State        *string `gorm:"size:100" json:"state"`
	PostalCode   *string `gorm:"size:20" json:"postal_code"`
	Country      string  `gorm:"size:100;default:'Pakistan'" json:"country"`
	IsDefault    bool    `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
