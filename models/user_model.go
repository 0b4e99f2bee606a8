package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	Role      string    `gorm:"size:20;not null;default:'customer'" json:"role"`

	City         *string `gorm:"size:100" json:"city"`
	Address      *string `gorm:"size:255" json:"address"`
	ProfileImage *string `gorm:"size:255" json:"profile_image"`
	DateOfBirth  *string `gorm:"size:10" json:"date_of_birth"`
	Gender       *string `gorm:"size:20" json:"gender"`
	Bio          *string `gorm:"type:text" json:"bio"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsActive   bool `gorm:"default:true" json:"-"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
