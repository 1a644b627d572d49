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

// ProviderRequest defines the structure for provider creation/update requests
type ProviderRequest struct {
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Capacity     int               `json:"capacity"`
	Enrollment   int               `json:"enrollment"`
	Rating       string            `json:"rating"`
	Status       string            `json:"status"`
	Location     string            `json:"location"`
	CustomFields map[string]string `json:"custom_fields"`
}

func (r *ProviderRequest) toModel() model.Provider {
	provider := model.Provider{
		Name:       r.Name,
		Type:       r.Type,
		Capacity:   r.Capacity,
		Enrollment: r.Enrollment,
		Rating:     r.Rating,
		Status:     r.Status,
		Location:   r.Location,
	}
	if provider.Status == "" {
		provider.Status = model.ProviderStatusPending
	}
	return provider
}

// ListProviders handles retrieving all providers
func ListProviders(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	providers, err := svc.ListAll()
	if err != nil {
		log.Error("Failed to list providers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve providers"})
	}

	return c.JSON(http.StatusOK, providers)
}

// GetProvider handles retrieving a single provider by ID
func GetProvider(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	provider, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "provider not found")
	}

	return c.JSON(http.StatusOK, provider)
}

// CreateProvider handles creating a new provider, optionally with custom
// field values
func CreateProvider(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" || req.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and type are required"})
	}

	provider := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	if err := svc.Create(&provider, req.CustomFields); err != nil {
		log.Error("Failed to create provider", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create provider"})
	}

	prometheus.RecordEntityOperation("provider", "create")
	log.Info("Provider created",
		zap.String("provider_id", provider.ID),
		zap.String("type", provider.Type))
	return c.JSON(http.StatusCreated, provider)
}

// UpdateProvider handles updating an existing provider
func UpdateProvider(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := req.toModel()

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	provider, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "provider not found")
	}

	prometheus.RecordEntityOperation("provider", "update")
	log.Info("Provider updated", zap.String("provider_id", id))
	return c.JSON(http.StatusOK, provider)
}

// DeleteProvider handles deleting a provider and its custom field values
func DeleteProvider(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "provider not found")
	}

	prometheus.RecordEntityOperation("provider", "delete")
	log.Info("Provider deleted", zap.String("provider_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "provider deleted"})
}

// GetProviderCustomFields returns a provider's custom field values keyed
// by field name
func GetProviderCustomFields(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	if _, err := svc.GetByID(id); err != nil {
		return serviceError(c, err, "provider not found")
	}

	values, err := svc.GetCustomValues(id)
	if err != nil {
		logger.FromEcho(c).Error("Failed to load custom fields", zap.String("provider_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve custom fields"})
	}

	return c.JSON(http.StatusOK, values)
}

// SaveProviderCustomFields replaces all custom field values for a provider
func SaveProviderCustomFields(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if values == nil {
		values = map[string]string{}
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewProviderService(database.GetDB())
	if _, err := svc.GetByID(id); err != nil {
		return serviceError(c, err, "provider not found")
	}

	if err := svc.SaveCustomValues(id, values); err != nil {
		log.Error("Failed to save custom fields", zap.String("provider_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save custom fields"})
	}

	prometheus.RecordCustomFieldSave(model.FormTypeProvider)
	log.Info("Provider custom fields saved", zap.String("provider_id", id), zap.Int("count", len(values)))
	return c.JSON(http.StatusOK, echo.Map{"message": "custom fields saved"})
}
