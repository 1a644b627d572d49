package handler

import (
	"net/http"
	"time"

	"casecare-service/internal/model"
	"casecare-service/internal/service"
	"casecare-service/pkg/database"
	"casecare-service/pkg/logger"
	"casecare-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TaskRequest defines the structure for task creation/update requests.
// TagIDs, when present, replaces the full tag association set.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  string     `json:"assignee_id"`
	CreatorID   string     `json:"creator_id"`
	TagIDs      []string   `json:"tag_ids"`
}

func (r *TaskRequest) toModel() model.TaskItem {
	task := model.TaskItem{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
		CreatorID:   r.CreatorID,
	}
	if task.Priority == "" {
		task.Priority = model.TaskPriorityNormal
	}
	if task.Status == "" {
		task.Status = model.TaskStatusPending
	}
	return task
}

// ListTasks handles retrieving tasks with optional assignee, status, and
// priority filters. "All" and empty filters are ignored.
func ListTasks(c echo.Context) error {
	log := logger.FromEcho(c)

	statusFilter := c.QueryParam("status")
	priorityFilter := c.QueryParam("priority")
	assigneeID := c.QueryParam("assignee_id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewTaskService(database.GetDB())

	var (
		tasks []model.TaskItem
		err   error
	)
	if assigneeID != "" {
		tasks, err = svc.ListForUser(assigneeID, statusFilter, priorityFilter)
	} else {
		tasks, err = svc.ListAll(statusFilter, priorityFilter)
	}
	if err != nil {
		log.Error("Failed to list tasks", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve tasks"})
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetTask handles retrieving a single task by ID
func GetTask(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewTaskService(database.GetDB())
	task, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "task not found")
	}

	return c.JSON(http.StatusOK, task)
}

// CreateTask handles creating a new task with its tag links
func CreateTask(c echo.Context) error {
	log := logger.FromEcho(c)

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Title == "" || req.AssigneeID == "" || req.CreatorID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, assignee_id and creator_id are required"})
	}

	task := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewTaskService(database.GetDB())
	if err := svc.Create(&task, req.TagIDs); err != nil {
		log.Error("Failed to create task", zap.String("title", req.Title), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create task"})
	}

	prometheus.RecordEntityOperation("task", "create")
	log.Info("Task created",
		zap.String("task_id", task.ID),
		zap.String("priority", task.Priority),
		zap.Int("tags", len(req.TagIDs)))
	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles updating an existing task. When tag_ids is present
// in the body the full tag set is replaced.
func UpdateTask(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := req.toModel()

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewTaskService(database.GetDB())
	task, err := svc.Update(id, &updates, req.TagIDs)
	if err != nil {
		return serviceError(c, err, "task not found")
	}

	prometheus.RecordEntityOperation("task", "update")
	log.Info("Task updated", zap.String("task_id", id))
	return c.JSON(http.StatusOK, task)
}

// StatusRequest carries the new status for a narrow status change
type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateTaskStatus handles a single-field status change
func UpdateTaskStatus(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status is required"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewTaskService(database.GetDB())
	if err := svc.UpdateStatus(id, req.Status); err != nil {
		return serviceError(c, err, "task not found")
	}

	prometheus.RecordEntityOperation("task", "status")
	log.Info("Task status updated", zap.String("task_id", id), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, echo.Map{"message": "task status updated"})
}

// DeleteTask handles deleting a task and its tag links
func DeleteTask(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewTaskService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "task not found")
	}

	prometheus.RecordEntityOperation("task", "delete")
	log.Info("Task deleted", zap.String("task_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}
