package service

import (
	"errors"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// HouseholdMemberService manages the members of a client household
type HouseholdMemberService struct {
	db *gorm.DB
}

func NewHouseholdMemberService(db *gorm.DB) *HouseholdMemberService {
	return &HouseholdMemberService{db: db}
}

// ListByClient returns a client's household members oldest-first
func (s *HouseholdMemberService) ListByClient(clientID string) ([]model.HouseholdMember, error) {
	var members []model.HouseholdMember
	err := s.db.
		Preload("Relationship").
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// GetByID returns a single household member
func (s *HouseholdMemberService) GetByID(id string) (*model.HouseholdMember, error) {
	var member model.HouseholdMember
	err := s.db.Preload("Relationship").First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Create persists a new household member
func (s *HouseholdMemberService) Create(member *model.HouseholdMember) error {
	return s.db.Create(member).Error
}

// CreateBatch persists several household members at once
func (s *HouseholdMemberService) CreateBatch(members []model.HouseholdMember) ([]model.HouseholdMember, error) {
	if len(members) == 0 {
		return members, nil
	}
	if err := s.db.Create(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Update overwrites the mutable attributes of a household member
func (s *HouseholdMemberService) Update(id string, updates *model.HouseholdMember) (*model.HouseholdMember, error) {
	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	member.Name = updates.Name
	member.RelationshipID = updates.RelationshipID
	member.DateOfBirth = updates.DateOfBirth
	member.Notes = updates.Notes
	member.Relationship = nil

	if err := s.db.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a household member
func (s *HouseholdMemberService) Delete(id string) error {
	result := s.db.Delete(&model.HouseholdMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceForClient swaps a client's entire household for the given set in
// one transaction
func (s *HouseholdMemberService) ReplaceForClient(clientID string, newMembers []model.HouseholdMember) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&model.HouseholdMember{}).Error; err != nil {
			return err
		}

		for i := range newMembers {
			newMembers[i].ID = ""
			newMembers[i].ClientID = clientID
			if err := tx.Create(&newMembers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
