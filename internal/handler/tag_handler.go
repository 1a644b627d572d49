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

// TagRequest defines the structure for tag creation/update requests
type TagRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	CreatedByID *string `json:"created_by_id"`
}

// ListTags handles retrieving all tags
func ListTags(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewTagService(database.GetDB())
	tags, err := svc.ListAll()
	if err != nil {
		log.Error("Failed to list tags", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve tags"})
	}

	return c.JSON(http.StatusOK, tags)
}

// GetTag handles retrieving a single tag by ID
func GetTag(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewTagService(database.GetDB())
	tag, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "tag not found")
	}

	return c.JSON(http.StatusOK, tag)
}

// CreateTag handles creating a new tag. Names conflict regardless of case.
func CreateTag(c echo.Context) error {
	log := logger.FromEcho(c)

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	tag := model.Tag{
		Name:        req.Name,
		Color:       req.Color,
		CreatedByID: req.CreatedByID,
	}
	if tag.Color == "" {
		tag.Color = "gray"
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewTagService(database.GetDB())
	if err := svc.Create(&tag); err != nil {
		log.Warn("Failed to create tag", zap.String("name", req.Name), zap.Error(err))
		return serviceError(c, err, "tag not found")
	}

	log.Info("Tag created", zap.String("tag_id", tag.ID), zap.String("name", tag.Name))
	return c.JSON(http.StatusCreated, tag)
}

// UpdateTag handles renaming or recoloring a tag
func UpdateTag(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := model.Tag{Name: req.Name, Color: req.Color}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewTagService(database.GetDB())
	tag, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "tag not found")
	}

	log.Info("Tag updated", zap.String("tag_id", id))
	return c.JSON(http.StatusOK, tag)
}

// DeleteTag handles deleting a tag and its task links
func DeleteTag(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewTagService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "tag not found")
	}

	log.Info("Tag deleted", zap.String("tag_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "tag deleted"})
}

// GetTagUsage returns the number of tasks carrying a tag
func GetTagUsage(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewTagService(database.GetDB())
	if _, err := svc.GetByID(id); err != nil {
		return serviceError(c, err, "tag not found")
	}

	count, err := svc.UsageCount(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to count tag usage"})
	}

	return c.JSON(http.StatusOK, echo.Map{"tag_id": id, "usage": count})
}
