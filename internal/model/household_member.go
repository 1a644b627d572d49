package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HouseholdMember belongs to one client household
type HouseholdMember struct {
	ID             string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	ClientID       string     `json:"client_id" gorm:"type:varchar(36);not null;index"`
	RelationshipID string     `json:"relationship_id" gorm:"type:varchar(36);not null;index"`
	Name           string     `json:"name" gorm:"type:varchar(100);not null"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Notes          *string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at"`

	Client       *Client       `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Relationship *Relationship `json:"relationship,omitempty" gorm:"foreignKey:RelationshipID;constraint:OnDelete:RESTRICT"`
}

func (m *HouseholdMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
