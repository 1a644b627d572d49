package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagColors lists the allowed tag colors
var TagColors = []string{"gray", "red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple", "pink"}

// Tag labels tasks; names are unique regardless of case
type Tag struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	Color       string    `json:"color" gorm:"type:varchar(20);not null;default:'gray'"`
	CreatedByID *string   `json:"created_by_id,omitempty" gorm:"type:varchar(36)"`
	CreatedAt   time.Time `json:"created_at"`

	CreatedBy *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
