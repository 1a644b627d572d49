package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client statuses
const (
	ClientStatusActive   = "Active"
	ClientStatusPending  = "Pending"
	ClientStatusInactive = "Inactive"
	ClientStatusOnHold   = "On Hold"
)

// Client represents a family receiving childcare coordination
type Client struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(200);not null"`
	Contact       string    `json:"contact" gorm:"type:varchar(200);not null"`
	Children      int       `json:"children" gorm:"not null;default:1"`
	Status        string    `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"` // Active, Pending, Inactive, On Hold
	LastContact   *string   `json:"last_contact,omitempty" gorm:"type:varchar(100)"`
	SSN           string    `json:"-" gorm:"column:ssn;type:text"` // encrypted at rest, never decrypted on read
	SSNLast4      string    `json:"-" gorm:"column:ssn_last4;type:varchar(4)"`
	CaseManagerID *string   `json:"case_manager_id,omitempty" gorm:"type:varchar(36);index"`
	CaseManager   *User     `json:"case_manager,omitempty" gorm:"foreignKey:CaseManagerID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time `json:"created_at"`

	MaskedSSN string `json:"masked_ssn,omitempty" gorm:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// AfterFind exposes only the last four digits of the SSN
func (c *Client) AfterFind(tx *gorm.DB) error {
	if c.SSNLast4 != "" {
		c.MaskedSSN = "***-**-" + c.SSNLast4
	}
	return nil
}
