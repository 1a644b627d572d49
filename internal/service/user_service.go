package service

import (
	"errors"
	"strings"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// UserService manages staff users
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ListAll returns all users ordered by name
func (s *UserService) ListAll() ([]model.User, error) {
	var users []model.User
	err := s.db.Order("name ASC").Find(&users).Error
	return users, err
}

// GetByID returns a single user
func (s *UserService) GetByID(id string) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email
func (s *UserService) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create persists a new user. The avatar is derived from the name.
func (s *UserService) Create(user *model.User) error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}

	user.Avatar = initials(user.Name)
	if err := s.db.Create(user).Error; err != nil {
		return err
	}
	user.CanManageUsers = user.Role == model.RoleAdmin || user.Role == model.RoleManager
	return nil
}

// Update overwrites the mutable attributes of a user
func (s *UserService) Update(id string, updates *model.User) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&model.User{}).
		Where("email = ? AND id != ?", updates.Email, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	user.Name = updates.Name
	user.Email = updates.Email
	user.Role = updates.Role
	user.Team = updates.Team
	user.Status = updates.Status
	user.Avatar = initials(updates.Name)

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	user.CanManageUsers = user.Role == model.RoleAdmin || user.Role == model.RoleManager
	return user, nil
}

// Delete removes a user. Users still assigned to or creators of tasks are
// refused; clients they case-manage are released (case manager set null).
func (s *UserService) Delete(id string) error {
	var taskCount int64
	err := s.db.Model(&model.TaskItem{}).
		Where("assignee_id = ? OR creator_id = ?", id, id).
		Count(&taskCount).Error
	if err != nil {
		return err
	}
	if taskCount > 0 {
		return ErrInUse
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Client{}).
			Where("case_manager_id = ?", id).
			Update("case_manager_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetDashboardPreferences returns the user's widget layout, falling back to
// the default when the stored blob is missing or unreadable
func (s *UserService) GetDashboardPreferences(userID string) (model.DashboardPreferences, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return model.DashboardPreferences{}, err
	}
	return model.DecodeDashboardPreferences(user.DashboardPreferences), nil
}

// SaveDashboardPreferences persists the user's widget layout
func (s *UserService) SaveDashboardPreferences(userID string, prefs model.DashboardPreferences) error {
	raw, err := model.EncodeDashboardPreferences(prefs)
	if err != nil {
		return err
	}

	result := s.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("dashboard_preferences", raw)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		return strings.ToUpper(string([]rune(parts[0])[0]) + string([]rune(parts[1])[0]))
	}
	if len(parts) == 1 {
		runes := []rune(parts[0])
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return strings.ToUpper(string(runes))
	}
	return "??"
}
