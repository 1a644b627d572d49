package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientCustomField holds one custom field value for a client. Rows are
// replaced wholesale on save, never merged.
type ClientCustomField struct {
	ID       string `json:"id" gorm:"type:varchar(36);primaryKey"`
	ClientID string `json:"client_id" gorm:"type:varchar(36);not null;index"`
	FieldID  string `json:"field_id" gorm:"type:varchar(36);not null;index"`
	Value    string `json:"value" gorm:"type:text"`

	Client *Client    `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Field  *FormField `json:"-" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

func (cf *ClientCustomField) BeforeCreate(tx *gorm.DB) error {
	if cf.ID == "" {
		cf.ID = uuid.New().String()
	}
	return nil
}

// ProviderCustomField holds one custom field value for a provider
type ProviderCustomField struct {
	ID         string `json:"id" gorm:"type:varchar(36);primaryKey"`
	ProviderID string `json:"provider_id" gorm:"type:varchar(36);not null;index"`
	FieldID    string `json:"field_id" gorm:"type:varchar(36);not null;index"`
	Value      string `json:"value" gorm:"type:text"`

	Provider *Provider  `json:"-" gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	Field    *FormField `json:"-" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

func (pf *ProviderCustomField) BeforeCreate(tx *gorm.DB) error {
	if pf.ID == "" {
		pf.ID = uuid.New().String()
	}
	return nil
}
