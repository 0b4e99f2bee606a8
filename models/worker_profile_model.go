package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

type WorkerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;unique" json:"user_id"`

	CNIC            *string  `gorm:"size:15" json:"cnic"`
	ServiceCategory string   `gorm:"size:50" json:"service_category"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	ExperienceLevel *string  `gorm:"size:50" json:"experience_level"`
	Bio             *string  `gorm:"type:text" json:"bio"`
	HourlyRate      *float64 `gorm:"type:numeric(10,2)" json:"hourly_rate"`
	ServiceRadius   int      `gorm:"default:10" json:"service_radius"`
	Languages       []string `gorm:"serializer:json" json:"languages"`
	PortfolioImages []string `gorm:"serializer:json" json:"portfolio_images"`
	Certifications  []string `gorm:"serializer:json" json:"certifications"`

	VerificationStatus VerificationStatus `gorm:"size:20;not null;default:'pending'" json:"verification_status"`
	Rating             float32            `gorm:"default:0" json:"rating"`
	TotalJobs          int                `gorm:"default:0" json:"total_jobs"`
	IsAvailable        bool               `gorm:"default:true" json:"is_available"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
