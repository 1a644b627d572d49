package service

import (
	"errors"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// FormFieldService manages the form field registry
type FormFieldService struct {
	db *gorm.DB
}

func NewFormFieldService(db *gorm.DB) *FormFieldService {
	return &FormFieldService{db: db}
}

// ListByFormType returns all fields for a form type ordered by display order
func (s *FormFieldService) ListByFormType(formType string) ([]model.FormField, error) {
	var fields []model.FormField
	err := s.db.
		Where("form_type = ?", formType).
		Order("display_order ASC").
		Find(&fields).Error
	return fields, err
}

// GetByID returns a single field
func (s *FormFieldService) GetByID(id string) (*model.FormField, error) {
	var field model.FormField
	if err := s.db.First(&field, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

// Create appends a new field at the end of its scope. Sectioned fields are
// ordered within their section, unsectioned ones within the whole form type.
func (s *FormFieldService) Create(field *model.FormField) error {
	var count int64
	err := s.db.Model(&model.FormField{}).
		Where("form_type = ? AND field_name = ?", field.FormType, field.FieldName).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}

	scope := s.db.Model(&model.FormField{}).Where("form_type = ?", field.FormType)
	if field.SectionID != nil {
		scope = scope.Where("section_id = ?", *field.SectionID)
	}

	var maxOrder int
	if err := scope.Select("COALESCE(MAX(display_order), -1)").Scan(&maxOrder).Error; err != nil {
		return err
	}
	field.Order = maxOrder + 1

	return s.db.Create(field).Error
}

// Update mutates the editable attributes of a field. Identity, form type,
// and the system flag never change.
func (s *FormFieldService) Update(id string, updates *model.FormField) (*model.FormField, error) {
	field, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.FieldName != field.FieldName {
		var count int64
		err := s.db.Model(&model.FormField{}).
			Where("form_type = ? AND field_name = ? AND id <> ?", field.FormType, updates.FieldName, field.ID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateName
		}
	}

	field.FieldName = updates.FieldName
	field.FieldLabel = updates.FieldLabel
	field.FieldType = updates.FieldType
	field.Options = updates.Options
	field.Required = updates.Required
	field.Placeholder = updates.Placeholder
	field.Width = updates.Width
	field.IsVisible = updates.IsVisible
	field.ModelProperty = updates.ModelProperty
	field.DefaultValue = updates.DefaultValue
	field.ValidationRegex = updates.ValidationRegex
	field.HelpText = updates.HelpText

	if err := s.db.Save(field).Error; err != nil {
		return nil, err
	}
	return field, nil
}

// Delete removes a custom field. System fields are refused.
func (s *FormFieldService) Delete(id string) error {
	field, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if field.IsSystem {
		return ErrSystemEntry
	}
	return s.db.Delete(field).Error
}

// Reorder assigns sequential display order 0..n-1 following the given
// id sequence. Unknown ids are skipped without disturbing the sequence
// assigned to known ones.
func (s *FormFieldService) Reorder(fieldIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range fieldIDs {
			if err := tx.Model(&model.FormField{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MoveToSection reassigns section membership and order in one step
func (s *FormFieldService) MoveToSection(fieldID string, sectionID *string, order int) error {
	result := s.db.Model(&model.FormField{}).
		Where("id = ?", fieldID).
		Updates(map[string]interface{}{
			"section_id":    sectionID,
			"display_order": order,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
