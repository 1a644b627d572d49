package service

import (
	"errors"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// RelationshipService manages the household relationship lookup table
type RelationshipService struct {
	db *gorm.DB
}

func NewRelationshipService(db *gorm.DB) *RelationshipService {
	return &RelationshipService{db: db}
}

// ListActive returns the active relationships in display order
func (s *RelationshipService) ListActive() ([]model.Relationship, error) {
	var relationships []model.Relationship
	err := s.db.
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&relationships).Error
	return relationships, err
}

// GetByID returns a single relationship
func (s *RelationshipService) GetByID(id string) (*model.Relationship, error) {
	var relationship model.Relationship
	if err := s.db.First(&relationship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &relationship, nil
}

// Create persists a new relationship kind
func (s *RelationshipService) Create(relationship *model.Relationship) error {
	var count int64
	err := s.db.Model(&model.Relationship{}).
		Where("name = ?", relationship.Name).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}

	return s.db.Create(relationship).Error
}

// Update overwrites the mutable attributes of a relationship
func (s *RelationshipService) Update(id string, updates *model.Relationship) (*model.Relationship, error) {
	relationship, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	relationship.Name = updates.Name
	relationship.DisplayOrder = updates.DisplayOrder
	relationship.IsActive = updates.IsActive

	if err := s.db.Save(relationship).Error; err != nil {
		return nil, err
	}
	return relationship, nil
}

// Delete deactivates a relationship instead of removing it, so existing
// household members keep a valid reference
func (s *RelationshipService) Delete(id string) error {
	result := s.db.Model(&model.Relationship{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
