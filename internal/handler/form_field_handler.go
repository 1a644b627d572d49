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

// FormFieldRequest defines the structure for form field creation/update
// requests
type FormFieldRequest struct {
	FormType        string  `json:"form_type"`
	SectionID       *string `json:"section_id"`
	FieldName       string  `json:"field_name"`
	FieldLabel      string  `json:"field_label"`
	FieldType       string  `json:"field_type"`
	Options         *string `json:"options"`
	Required        bool    `json:"required"`
	Placeholder     *string `json:"placeholder"`
	Width           string  `json:"width"`
	IsVisible       *bool   `json:"is_visible"`
	ModelProperty   *string `json:"model_property"`
	DefaultValue    *string `json:"default_value"`
	ValidationRegex *string `json:"validation_regex"`
	HelpText        *string `json:"help_text"`
}

func (r *FormFieldRequest) toModel() model.FormField {
	field := model.FormField{
		FormType:        r.FormType,
		SectionID:       r.SectionID,
		FieldName:       r.FieldName,
		FieldLabel:      r.FieldLabel,
		FieldType:       r.FieldType,
		Options:         r.Options,
		Required:        r.Required,
		Placeholder:     r.Placeholder,
		Width:           r.Width,
		IsVisible:       true,
		ModelProperty:   r.ModelProperty,
		DefaultValue:    r.DefaultValue,
		ValidationRegex: r.ValidationRegex,
		HelpText:        r.HelpText,
	}
	if r.IsVisible != nil {
		field.IsVisible = *r.IsVisible
	}
	if field.FieldType == "" {
		field.FieldType = "text"
	}
	if field.Width == "" {
		field.Width = model.FieldWidthFull
	}
	return field
}

// ListFormFields returns the fields of a form type in display order
func ListFormFields(c echo.Context) error {
	log := logger.FromEcho(c)

	formType := c.QueryParam("form_type")
	if formType == "" {
		formType = model.FormTypeClient
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	fields, err := svc.ListByFormType(formType)
	if err != nil {
		log.Error("Failed to list form fields", zap.String("form_type", formType), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve form fields"})
	}

	return c.JSON(http.StatusOK, fields)
}

// GetFormField returns a single form field definition
func GetFormField(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	field, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "form field not found")
	}

	return c.JSON(http.StatusOK, field)
}

// CreateFormField registers a new custom field at the end of its scope
func CreateFormField(c echo.Context) error {
	log := logger.FromEcho(c)

	var req FormFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.FormType == "" || req.FieldName == "" || req.FieldLabel == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "form_type, field_name and field_label are required"})
	}

	field := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	if err := svc.Create(&field); err != nil {
		log.Error("Failed to create form field",
			zap.String("form_type", req.FormType),
			zap.String("field_name", req.FieldName),
			zap.Error(err))
		return serviceError(c, err, "form field not found")
	}

	prometheus.RecordFormFieldOperation(field.FormType, "create")
	log.Info("Form field created",
		zap.String("field_id", field.ID),
		zap.String("field_name", field.FieldName),
		zap.Int("order", field.Order))
	return c.JSON(http.StatusCreated, field)
}

// UpdateFormField mutates the editable attributes of a field
func UpdateFormField(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req FormFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := req.toModel()

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	field, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "form field not found")
	}

	prometheus.RecordFormFieldOperation(field.FormType, "update")
	log.Info("Form field updated", zap.String("field_id", id))
	return c.JSON(http.StatusOK, field)
}

// DeleteFormField removes a custom field; system fields are refused
func DeleteFormField(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete form field", zap.String("field_id", id), zap.Error(err))
		return serviceError(c, err, "form field not found")
	}

	log.Info("Form field deleted", zap.String("field_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "form field deleted"})
}

// ReorderRequest carries the new id sequence for reordering
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// ReorderFormFields assigns sequential display order following the given
// id sequence
func ReorderFormFields(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	if err := svc.Reorder(req.IDs); err != nil {
		log.Error("Failed to reorder form fields", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reorder form fields"})
	}

	log.Info("Form fields reordered", zap.Int("count", len(req.IDs)))
	return c.JSON(http.StatusOK, echo.Map{"message": "form fields reordered"})
}

// MoveFieldRequest carries the target section and order for a field move
type MoveFieldRequest struct {
	SectionID *string `json:"section_id"`
	Order     int     `json:"order"`
}

// MoveFormFieldToSection reassigns section membership and order in one step
func MoveFormFieldToSection(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req MoveFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewFormFieldService(database.GetDB())
	if err := svc.MoveToSection(id, req.SectionID, req.Order); err != nil {
		return serviceError(c, err, "form field not found")
	}

	log.Info("Form field moved", zap.String("field_id", id), zap.Int("order", req.Order))
	return c.JSON(http.StatusOK, echo.Map{"message": "form field moved"})
}
