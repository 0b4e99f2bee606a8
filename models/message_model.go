package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChatRoomID uuid.UUID `gorm:"not null;index" json:"chat_room_id"`
	SenderID   uuid.UUID `gorm:"not null" json:"sender_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	MessageType string `gorm:"size:20;not null;default:'text'" json:"message_type"`

	FileURL  *string `gorm:"size:255" json:"file_url"`
	FileName *string `gorm:"size:255" json:"file_name"`
	FileSize *int64  `json:"file_size"`

	LocationLat     *float64 `json:"location_lat"`
	LocationLng     *float64 `json:"location_lng"`
	LocationAddress *string  `gorm:"size:255" json:"location_address"`

	IsRead bool       `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time `json:"read_at"`

	Sender   User     `gorm:"foreignkey:SenderID" json:"sender,omitempty"`
	ChatRoom ChatRoom `gorm:"foreignkey:ChatRoomID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
