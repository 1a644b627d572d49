package service

import (
	"errors"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// FormSectionService manages form sections
type FormSectionService struct {
	db *gorm.DB
}

func NewFormSectionService(db *gorm.DB) *FormSectionService {
	return &FormSectionService{db: db}
}

// ListByFormType returns the sections of a form type ordered by display order
func (s *FormSectionService) ListByFormType(formType string) ([]model.FormSection, error) {
	var sections []model.FormSection
	err := s.db.
		Where("form_type = ?", formType).
		Order("display_order ASC").
		Find(&sections).Error
	return sections, err
}

// ListWithFields returns the sections with their fields, both ordered
func (s *FormSectionService) ListWithFields(formType string) ([]model.FormSection, error) {
	var sections []model.FormSection
	err := s.db.
		Where("form_type = ?", formType).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("display_order ASC").
		Find(&sections).Error
	return sections, err
}

// GetByID returns a single section with its fields
func (s *FormSectionService) GetByID(id string) (*model.FormSection, error) {
	var section model.FormSection
	err := s.db.Preload("Fields").First(&section, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// Create appends a new section at the end of its form type
func (s *FormSectionService) Create(section *model.FormSection) error {
	var maxOrder int
	err := s.db.Model(&model.FormSection{}).
		Where("form_type = ?", section.FormType).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&maxOrder).Error
	if err != nil {
		return err
	}
	section.Order = maxOrder + 1

	return s.db.Create(section).Error
}

// Update mutates the editable attributes of a section
func (s *FormSectionService) Update(id string, updates *model.FormSection) (*model.FormSection, error) {
	var section model.FormSection
	if err := s.db.First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	section.Name = updates.Name
	section.Description = updates.Description
	section.IsVisible = updates.IsVisible
	section.IsCollapsible = updates.IsCollapsible
	section.Icon = updates.Icon

	if err := s.db.Save(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Delete removes a custom section. System sections are refused.
func (s *FormSectionService) Delete(id string) error {
	var section model.FormSection
	if err := s.db.First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if section.IsSystem {
		return ErrSystemEntry
	}
	return s.db.Delete(&section).Error
}

// Reorder assigns sequential display order following the given id sequence
func (s *FormSectionService) Reorder(sectionIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range sectionIDs {
			if err := tx.Model(&model.FormSection{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
