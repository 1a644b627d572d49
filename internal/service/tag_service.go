package service

import (
	"errors"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// TagService manages task tags. Tag names are unique regardless of case.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// ListAll returns all tags ordered by name
func (s *TagService) ListAll() ([]model.Tag, error) {
	var tags []model.Tag
	err := s.db.Preload("CreatedBy").Order("name ASC").Find(&tags).Error
	return tags, err
}

// GetByID returns a single tag
func (s *TagService) GetByID(id string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.Preload("CreatedBy").First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetByName returns the tag with the given name, ignoring case
func (s *TagService) GetByName(name string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// Create persists a new tag, refusing case-insensitive name collisions
func (s *TagService) Create(tag *model.Tag) error {
	var count int64
	err := s.db.Model(&model.Tag{}).
		Where("LOWER(name) = LOWER(?)", tag.Name).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}

	return s.db.Create(tag).Error
}

// Update renames or recolors a tag, refusing case-insensitive collisions
// with other tags
func (s *TagService) Update(id string, updates *model.Tag) (*model.Tag, error) {
	tag, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.db.Model(&model.Tag{}).
		Where("LOWER(name) = LOWER(?) AND id != ?", updates.Name, id).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	tag.Name = updates.Name
	tag.Color = updates.Color

	if err := s.db.Save(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag and, through the cascade, its task links
func (s *TagService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.TaskTag{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Tag{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// UsageCount counts the tasks currently carrying a tag
func (s *TagService) UsageCount(id string) (int64, error) {
	var count int64
	err := s.db.Model(&model.TaskTag{}).Where("tag_id = ?", id).Count(&count).Error
	return count, err
}
