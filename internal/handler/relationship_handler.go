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

// RelationshipRequest defines the structure for relationship lookup requests
type RelationshipRequest struct {
	Name         string `json:"name"`
	DisplayOrder *int   `json:"display_order"`
}

// ListRelationships handles retrieving the active relationship lookup entries
func ListRelationships(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewRelationshipService(database.GetDB())
	relationships, err := svc.ListActive()
	if err != nil {
		log.Error("Failed to list relationships", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve relationships"})
	}

	return c.JSON(http.StatusOK, relationships)
}

// CreateRelationship handles adding a relationship lookup entry
func CreateRelationship(c echo.Context) error {
	log := logger.FromEcho(c)

	var req RelationshipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	relationship := model.Relationship{Name: req.Name, IsActive: true}
	if req.DisplayOrder != nil {
		relationship.DisplayOrder = *req.DisplayOrder
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewRelationshipService(database.GetDB())
	if err := svc.Create(&relationship); err != nil {
		return serviceError(c, err, "relationship not found")
	}

	log.Info("Relationship created", zap.String("relationship_id", relationship.ID), zap.String("name", relationship.Name))
	return c.JSON(http.StatusCreated, relationship)
}

// UpdateRelationship handles renaming or reordering a relationship entry
func UpdateRelationship(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req RelationshipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := model.Relationship{Name: req.Name}
	if req.DisplayOrder != nil {
		updates.DisplayOrder = *req.DisplayOrder
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewRelationshipService(database.GetDB())
	relationship, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "relationship not found")
	}

	log.Info("Relationship updated", zap.String("relationship_id", id))
	return c.JSON(http.StatusOK, relationship)
}

// DeleteRelationship deactivates a relationship entry. Existing household
// members keep their reference.
func DeleteRelationship(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewRelationshipService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "relationship not found")
	}

	log.Info("Relationship deactivated", zap.String("relationship_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "relationship deactivated"})
}
