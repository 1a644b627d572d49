package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Phone number types
const (
	PhoneTypeMobile = "Mobile"
	PhoneTypeMain   = "Main"
	PhoneTypeWork   = "Work"
	PhoneTypeOther  = "Other"
)

// PhoneNumber is one contact number for a client, stored in the
// "(XXX) XXX-XXXX" display format
type PhoneNumber struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ClientID  string    `json:"client_id" gorm:"type:varchar(36);not null;index"`
	Phone     string    `json:"phone" gorm:"type:varchar(20);not null"`
	PhoneType string    `json:"phone_type" gorm:"type:varchar(10);not null;default:'Main'"`
	CreatedAt time.Time `json:"created_at"`

	Client *Client `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (p *PhoneNumber) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
