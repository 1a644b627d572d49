package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Form types discriminate which entity kind a section or field applies to
const (
	FormTypeClient   = "client"
	FormTypeProvider = "provider"
)

// Field widths
const (
	FieldWidthFull  = "full"
	FieldWidthHalf  = "half"
	FieldWidthThird = "third"
)

// FieldTypes lists the supported field input types
var FieldTypes = []string{
	"text", "number", "select", "date", "textarea", "checkbox",
	"email", "phone", "ssn", "phone_list", "user_select",
}

// FormSection groups form fields on a client or provider form
type FormSection struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	FormType      string    `json:"form_type" gorm:"type:varchar(20);not null;default:'client';index"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	Order         int       `json:"order" gorm:"column:display_order;not null;default:0"`
	IsSystem      bool      `json:"is_system" gorm:"not null;default:false"`
	IsVisible     bool      `json:"is_visible" gorm:"not null;default:true"`
	IsCollapsible bool      `json:"is_collapsible" gorm:"not null;default:false"`
	Icon          *string   `json:"icon,omitempty" gorm:"type:varchar(50)"`
	CreatedAt     time.Time `json:"created_at"`

	Fields []FormField `json:"fields,omitempty" gorm:"foreignKey:SectionID"`
}

func (s *FormSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// FormField defines one field of a client or provider form. System fields
// ship with the application and cannot be deleted; custom fields are added
// by administrators at runtime and hold their values in the per-entity
// custom field tables.
type FormField struct {
	ID              string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	FormType        string    `json:"form_type" gorm:"type:varchar(20);not null;index:idx_form_fields_type_name,unique"`
	SectionID       *string   `json:"section_id,omitempty" gorm:"type:varchar(36);index"`
	FieldName       string    `json:"field_name" gorm:"type:varchar(100);not null;index:idx_form_fields_type_name,unique"`
	FieldLabel      string    `json:"field_label" gorm:"type:varchar(200);not null"`
	FieldType       string    `json:"field_type" gorm:"type:varchar(20);not null;default:'text'"`
	Options         *string   `json:"options,omitempty" gorm:"type:text"` // comma-delimited choices for select fields
	Required        bool      `json:"required" gorm:"not null;default:false"`
	Placeholder     *string   `json:"placeholder,omitempty" gorm:"type:varchar(200)"`
	Order           int       `json:"order" gorm:"column:display_order;not null;default:0"`
	Width           string    `json:"width" gorm:"type:varchar(10);not null;default:'full'"` // full, half, third
	IsSystem        bool      `json:"is_system" gorm:"not null;default:false"`
	IsVisible       bool      `json:"is_visible" gorm:"not null;default:true"`
	ModelProperty   *string   `json:"model_property,omitempty" gorm:"type:varchar(100)"` // maps to a built-in entity attribute
	DefaultValue    *string   `json:"default_value,omitempty" gorm:"type:text"`
	ValidationRegex *string   `json:"validation_regex,omitempty" gorm:"type:text"`
	HelpText        *string   `json:"help_text,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`

	Section *FormSection `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:SET NULL"`
}

func (f *FormField) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
