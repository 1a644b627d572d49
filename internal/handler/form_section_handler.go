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

// FormSectionRequest defines the structure for section creation/update
// requests
type FormSectionRequest struct {
	FormType      string  `json:"form_type"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	IsVisible     *bool   `json:"is_visible"`
	IsCollapsible bool    `json:"is_collapsible"`
	Icon          *string `json:"icon"`
}

func (r *FormSectionRequest) toModel() model.FormSection {
	section := model.FormSection{
		FormType:      r.FormType,
		Name:          r.Name,
		Description:   r.Description,
		IsVisible:     true,
		IsCollapsible: r.IsCollapsible,
		Icon:          r.Icon,
	}
	if r.IsVisible != nil {
		section.IsVisible = *r.IsVisible
	}
	if section.FormType == "" {
		section.FormType = model.FormTypeClient
	}
	return section
}

// ListFormSections returns the sections of a form type in display order.
// With ?include=fields each section carries its ordered fields.
func ListFormSections(c echo.Context) error {
	log := logger.FromEcho(c)

	formType := c.QueryParam("form_type")
	if formType == "" {
		formType = model.FormTypeClient
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewFormSectionService(database.GetDB())

	var (
		sections []model.FormSection
		err      error
	)
	if c.QueryParam("include") == "fields" {
		sections, err = svc.ListWithFields(formType)
	} else {
		sections, err = svc.ListByFormType(formType)
	}
	if err != nil {
		log.Error("Failed to list form sections", zap.String("form_type", formType), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve form sections"})
	}

	return c.JSON(http.StatusOK, sections)
}

// GetFormSection returns a single section with its fields
func GetFormSection(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewFormSectionService(database.GetDB())
	section, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "form section not found")
	}

	return c.JSON(http.StatusOK, section)
}

// CreateFormSection appends a new section to its form type
func CreateFormSection(c echo.Context) error {
	log := logger.FromEcho(c)

	var req FormSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	section := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewFormSectionService(database.GetDB())
	if err := svc.Create(&section); err != nil {
		log.Error("Failed to create form section", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create form section"})
	}

	log.Info("Form section created",
		zap.String("section_id", section.ID),
		zap.String("form_type", section.FormType),
		zap.Int("order", section.Order))
	return c.JSON(http.StatusCreated, section)
}

// UpdateFormSection mutates the editable attributes of a section
func UpdateFormSection(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req FormSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := req.toModel()

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewFormSectionService(database.GetDB())
	section, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "form section not found")
	}

	log.Info("Form section updated", zap.String("section_id", id))
	return c.JSON(http.StatusOK, section)
}

// DeleteFormSection removes a custom section; system sections are refused
func DeleteFormSection(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewFormSectionService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete form section", zap.String("section_id", id), zap.Error(err))
		return serviceError(c, err, "form section not found")
	}

	log.Info("Form section deleted", zap.String("section_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "form section deleted"})
}

// ReorderFormSections assigns sequential display order following the
// given id sequence
func ReorderFormSections(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewFormSectionService(database.GetDB())
	if err := svc.Reorder(req.IDs); err != nil {
		log.Error("Failed to reorder form sections", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reorder form sections"})
	}

	log.Info("Form sections reordered", zap.Int("count", len(req.IDs)))
	return c.JSON(http.StatusOK, echo.Map{"message": "form sections reordered"})
}
