package service

import (
	"errors"
	"sort"
	"time"

	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// FilterAll is the sentinel filter value meaning "no filter"
const FilterAll = "All"

// TaskService manages tasks and their tag associations
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) listQuery(statusFilter, priorityFilter string) *gorm.DB {
	query := s.db.
		Preload("Assignee").
		Preload("Creator").
		Preload("TaskTags.Tag")

	if statusFilter != "" && statusFilter != FilterAll {
		query = query.Where("status = ?", statusFilter)
	}
	if priorityFilter != "" && priorityFilter != FilterAll {
		query = query.Where("priority = ?", priorityFilter)
	}
	return query
}

// ListForUser returns the tasks assigned to one user, filtered and sorted
func (s *TaskService) ListForUser(userID, statusFilter, priorityFilter string) ([]model.TaskItem, error) {
	var tasks []model.TaskItem
	err := s.listQuery(statusFilter, priorityFilter).
		Where("assignee_id = ?", userID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

// ListAll returns all tasks, filtered and sorted
func (s *TaskService) ListAll(statusFilter, priorityFilter string) ([]model.TaskItem, error) {
	var tasks []model.TaskItem
	if err := s.listQuery(statusFilter, priorityFilter).Find(&tasks).Error; err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

// sortTasks orders completed tasks last, then by due date ascending with
// missing dates last, then by priority descending
func sortTasks(tasks []model.TaskItem) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		aDone := a.Status == model.TaskStatusCompleted
		bDone := b.Status == model.TaskStatusCompleted
		if aDone != bDone {
			return !aDone
		}

		aDue, bDue := dueOrMax(a.DueDate), dueOrMax(b.DueDate)
		if !aDue.Equal(bDue) {
			return aDue.Before(bDue)
		}

		return model.PriorityRank(a.Priority) > model.PriorityRank(b.Priority)
	})
}

func dueOrMax(due *time.Time) time.Time {
	if due == nil {
		// matches "no due date sorts last among non-completed"
		return time.Unix(1<<62, 0)
	}
	return *due
}

// GetByID returns a single task with assignee, creator, and tags
func (s *TaskService) GetByID(id string) (*model.TaskItem, error) {
	var task model.TaskItem
	err := s.db.
		Preload("Assignee").
		Preload("Creator").
		Preload("TaskTags.Tag").
		First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// PendingCountForUser counts a user's not-completed tasks
func (s *TaskService) PendingCountForUser(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&model.TaskItem{}).
		Where("assignee_id = ? AND status != ?", userID, model.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

// TotalPendingCount counts all not-completed tasks
func (s *TaskService) TotalPendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&model.TaskItem{}).
		Where("status != ?", model.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

// Create persists a new task with its tag links in one transaction
func (s *TaskService) Create(task *model.TaskItem, tagIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			link := model.TaskTag{
				TaskID:  task.ID,
				TagID:   tagID,
				AddedAt: time.Now().UTC(),
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update overwrites the mutable attributes of a task. A non-nil tagIDs
// replaces all tag links with the new set; nil leaves them alone.
func (s *TaskService) Update(id string, updates *model.TaskItem, tagIDs []string) (*model.TaskItem, error) {
	var task model.TaskItem
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	task.Title = updates.Title
	task.Description = updates.Description
	task.Priority = updates.Priority
	task.Status = updates.Status
	task.DueDate = updates.DueDate
	task.AssigneeID = updates.AssigneeID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		if tagIDs != nil {
			if err := tx.Where("task_id = ?", id).Delete(&model.TaskTag{}).Error; err != nil {
				return err
			}
			for _, tagID := range tagIDs {
				link := model.TaskTag{
					TaskID:  id,
					TagID:   tagID,
					AddedAt: time.Now().UTC(),
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// UpdateStatus changes only the status, bumping the update timestamp
func (s *TaskService) UpdateStatus(id, newStatus string) error {
	result := s.db.Model(&model.TaskItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task and its tag links in one transaction
func (s *TaskService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskTag{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.TaskItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
