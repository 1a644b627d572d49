package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Relationship is a lookup table for household member relationship kinds
// (Self, Spouse, Child, ...). Entries are deactivated, never removed, so
// existing household members keep a valid reference.
type Relationship struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *Relationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
