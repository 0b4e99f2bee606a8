package models

import (
	"time"

	"github.com/google/uuid"
)

type UserSettings struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;unique" json:"user_id"`

	NotificationsEnabled bool `gorm:"default:true" json:"notifications_enabled"`
	EmailNotifications   bool `gorm:"default:true" json:"email_notifications"`
	SMSNotifications     bool `gorm:"default:false" json:"sms_notifications"`
	PushNotifications    bool `gorm:"default:true" json:"push_notifications"`
	MarketingEmails      bool `gorm:"default:false" json:"marketing_emails"`

	Language       string `gorm:"size:10;default:'en'" json:"language"`
	TimeZone       string `gorm:"size:50;default:'Asia/Karachi'" json:"timezone"`
	Theme          string `gorm:"size:20;default:'light'" json:"theme"`
	PrivacyProfile string `gorm:"size:20;default:'public'" json:"privacy_profile"`

	TwoFactorEnabled bool `gorm:"default:false" json:"two_factor_enabled"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
