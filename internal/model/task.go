package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task priorities
const (
	TaskPriorityLow    = "Low"
	TaskPriorityNormal = "Normal"
	TaskPriorityHigh   = "High"
	TaskPriorityUrgent = "Urgent"
)

// Task statuses
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// TaskPriorities lists priorities from lowest to highest
var TaskPriorities = []string{TaskPriorityLow, TaskPriorityNormal, TaskPriorityHigh, TaskPriorityUrgent}

// TaskStatuses lists the task lifecycle states
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// PriorityRank maps a priority to its sort weight (Urgent highest)
func PriorityRank(priority string) int {
	switch priority {
	case TaskPriorityUrgent:
		return 4
	case TaskPriorityHigh:
		return 3
	case TaskPriorityNormal:
		return 2
	default:
		return 1
	}
}

// TaskItem represents a work item assigned to a staff member
type TaskItem struct {
	ID          string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(200);not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	Priority    string     `json:"priority" gorm:"type:varchar(20);not null;default:'Normal'"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssigneeID  string     `json:"assignee_id" gorm:"type:varchar(36);not null;index"`
	CreatorID   string     `json:"creator_id" gorm:"type:varchar(36);not null;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Assignee *User     `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:RESTRICT"`
	Creator  *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT"`
	TaskTags []TaskTag `json:"task_tags,omitempty" gorm:"foreignKey:TaskID"`
}

func (t *TaskItem) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName keeps the legacy table name
func (TaskItem) TableName() string {
	return "tasks"
}

// TaskTag links a task to a tag (composite key, cascade both directions)
type TaskTag struct {
	TaskID  string    `json:"task_id" gorm:"type:varchar(36);primaryKey"`
	TagID   string    `json:"tag_id" gorm:"type:varchar(36);primaryKey"`
	AddedAt time.Time `json:"added_at"`

	Task *TaskItem `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Tag  *Tag      `json:"tag,omitempty" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
