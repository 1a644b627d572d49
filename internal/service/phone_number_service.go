package service

import (
	"casecare-service/internal/model"
	"casecare-service/pkg/encryption"

	"gorm.io/gorm"
)

// PhoneNumberService manages client contact numbers
type PhoneNumberService struct {
	db *gorm.DB
}

func NewPhoneNumberService(db *gorm.DB) *PhoneNumberService {
	return &PhoneNumberService{db: db}
}

// ListByClient returns a client's phone numbers oldest-first
func (s *PhoneNumberService) ListByClient(clientID string) ([]model.PhoneNumber, error) {
	var numbers []model.PhoneNumber
	err := s.db.
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&numbers).Error
	return numbers, err
}

// Create persists a phone number, normalized to the display format
func (s *PhoneNumberService) Create(number *model.PhoneNumber) error {
	if number.Phone != "" {
		number.Phone = encryption.FormatPhoneNumber(number.Phone)
	}
	return s.db.Create(number).Error
}

// CreateBatch persists several phone numbers at once
func (s *PhoneNumberService) CreateBatch(numbers []model.PhoneNumber) error {
	if len(numbers) == 0 {
		return nil
	}
	for i := range numbers {
		if numbers[i].Phone != "" {
			numbers[i].Phone = encryption.FormatPhoneNumber(numbers[i].Phone)
		}
	}
	return s.db.Create(&numbers).Error
}

// Delete removes a phone number
func (s *PhoneNumberService) Delete(id string) error {
	result := s.db.Delete(&model.PhoneNumber{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
