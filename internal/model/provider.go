package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider types
const (
	ProviderTypeCenter    = "Center"
	ProviderTypeInHome    = "In-Home"
	ProviderTypePreschool = "Preschool"
)

// Provider statuses
const (
	ProviderStatusVerified     = "Verified"
	ProviderStatusPending      = "Pending"
	ProviderStatusReviewNeeded = "Review Needed"
)

// Provider represents a childcare provider (center, in-home care, preschool)
type Provider struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(200);not null"`
	Type       string    `json:"type" gorm:"type:varchar(20);not null"` // Center, In-Home, Preschool
	Capacity   int       `json:"capacity" gorm:"not null;default:0"`
	Enrollment int       `json:"enrollment" gorm:"not null;default:0"`
	Rating     string    `json:"rating" gorm:"type:varchar(10)"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"` // Verified, Pending, Review Needed
	Location   string    `json:"location" gorm:"type:varchar(200)"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *Provider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
