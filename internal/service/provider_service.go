package service

import (
	"errors"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// ProviderService manages childcare providers and their custom field values
type ProviderService struct {
	db *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{db: db}
}

// ListAll returns all providers ordered by name
func (s *ProviderService) ListAll() ([]model.Provider, error) {
	var providers []model.Provider
	err := s.db.Order("name ASC").Find(&providers).Error
	return providers, err
}

// GetByID returns a single provider
func (s *ProviderService) GetByID(id string) (*model.Provider, error) {
	var provider model.Provider
	if err := s.db.First(&provider, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &provider, nil
}

// Create persists a new provider and, when supplied, its custom field values
func (s *ProviderService) Create(provider *model.Provider, customFields map[string]string) error {
	if err := s.db.Create(provider).Error; err != nil {
		return err
	}

	if customFields != nil {
		return s.SaveCustomValues(provider.ID, customFields)
	}
	return nil
}

// Update overwrites the mutable attributes of a provider
func (s *ProviderService) Update(id string, updates *model.Provider) (*model.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	provider.Name = updates.Name
	provider.Type = updates.Type
	provider.Capacity = updates.Capacity
	provider.Enrollment = updates.Enrollment
	provider.Rating = updates.Rating
	provider.Status = updates.Status
	provider.Location = updates.Location

	if err := s.db.Save(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

// Delete removes a provider and its custom field values in one transaction
func (s *ProviderService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", id).Delete(&model.ProviderCustomField{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Provider{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetCustomValues returns the provider's custom field values keyed by field
// name, falling back to the raw field id for orphaned rows
func (s *ProviderService) GetCustomValues(providerID string) (map[string]string, error) {
	var rows []model.ProviderCustomField
	err := s.db.
		Preload("Field").
		Where("provider_id = ?", providerID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		key := row.FieldID
		if row.Field != nil {
			key = row.Field.FieldName
		}
		values[key] = row.Value
	}
	return values, nil
}

// SaveCustomValues replaces all custom field values for a provider with the
// given mapping. Keys that match no provider form field are dropped.
func (s *ProviderService) SaveCustomValues(providerID string, customFields map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).Delete(&model.ProviderCustomField{}).Error; err != nil {
			return err
		}

		var formFields []model.FormField
		if err := tx.Where("form_type = ?", model.FormTypeProvider).Find(&formFields).Error; err != nil {
			return err
		}

		byName := make(map[string]string, len(formFields))
		for _, f := range formFields {
			byName[f.FieldName] = f.ID
		}

		for fieldName, value := range customFields {
			fieldID, ok := byName[fieldName]
			if !ok {
				continue
			}
			row := model.ProviderCustomField{
				ProviderID: providerID,
				FieldID:    fieldID,
				Value:      value,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
