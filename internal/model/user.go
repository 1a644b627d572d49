package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin       = "Admin"
	RoleManager     = "Manager"
	RoleCaseManager = "Case Manager"
	RoleCoordinator = "Coordinator"
)

// User statuses
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusAway     = "Away"
)

// User represents a staff member
type User struct {
	ID                   string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name                 string    `json:"name" gorm:"type:varchar(100);not null"`
	Email                string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Role                 string    `json:"role" gorm:"type:varchar(20);not null;default:'Coordinator'"` // Admin, Manager, Case Manager, Coordinator
	Team                 string    `json:"team" gorm:"type:varchar(100);not null"`
	Status               string    `json:"status" gorm:"type:varchar(20);not null;default:'Active'"` // Active, Inactive, Away
	Avatar               string    `json:"avatar" gorm:"type:varchar(10)"`
	DashboardPreferences string    `json:"-" gorm:"type:text"`
	CreatedAt            time.Time `json:"created_at"`

	CanManageUsers bool `json:"can_manage_users" gorm:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// AfterFind fills the derived permission flag
func (u *User) AfterFind(tx *gorm.DB) error {
	u.CanManageUsers = u.Role == RoleAdmin || u.Role == RoleManager
	return nil
}
