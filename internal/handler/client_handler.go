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

// ClientRequest defines the structure for client creation/update requests
type ClientRequest struct {
	Name          string            `json:"name"`
	Contact       string            `json:"contact"`
	Children      int               `json:"children"`
	Status        string            `json:"status"`
	LastContact   *string           `json:"last_contact"`
	SSN           string            `json:"ssn"`
	CaseManagerID *string           `json:"case_manager_id"`
	CustomFields  map[string]string `json:"custom_fields"`
}

func (r *ClientRequest) toModel() model.Client {
	client := model.Client{
		Name:          r.Name,
		Contact:       r.Contact,
		Children:      r.Children,
		Status:        r.Status,
		LastContact:   r.LastContact,
		SSN:           r.SSN,
		CaseManagerID: r.CaseManagerID,
	}
	if client.Status == "" {
		client.Status = model.ClientStatusPending
	}
	return client
}

// ListClients handles retrieving all clients, optionally scoped to one
// case manager
func ListClients(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewClientService(database.GetDB())

	var (
		clients []model.Client
		err     error
	)
	if caseManagerID := c.QueryParam("case_manager_id"); caseManagerID != "" {
		clients, err = svc.ListByCaseManager(caseManagerID)
	} else {
		clients, err = svc.ListAll()
	}
	if err != nil {
		log.Error("Failed to list clients", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve clients"})
	}

	return c.JSON(http.StatusOK, clients)
}

// GetClient handles retrieving a single client by ID
func GetClient(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewClientService(database.GetDB())
	client, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "client not found")
	}

	return c.JSON(http.StatusOK, client)
}

// CreateClient handles creating a new client, optionally with custom
// field values
func CreateClient(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" || req.Contact == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and contact are required"})
	}

	client := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewClientService(database.GetDB())
	if err := svc.Create(&client, req.CustomFields); err != nil {
		log.Error("Failed to create client", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create client"})
	}

	prometheus.RecordEntityOperation("client", "create")
	log.Info("Client created",
		zap.String("client_id", client.ID),
		zap.String("status", client.Status),
		zap.Int("custom_fields", len(req.CustomFields)))
	return c.JSON(http.StatusCreated, client)
}

// UpdateClient handles updating an existing client
func UpdateClient(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := req.toModel()

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewClientService(database.GetDB())
	client, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "client not found")
	}

	prometheus.RecordEntityOperation("client", "update")
	log.Info("Client updated", zap.String("client_id", id))
	return c.JSON(http.StatusOK, client)
}

// DeleteClient handles deleting a client and its dependent rows
func DeleteClient(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewClientService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "client not found")
	}

	prometheus.RecordEntityOperation("client", "delete")
	log.Info("Client deleted", zap.String("client_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "client deleted"})
}

// GetClientCustomFields returns a client's custom field values keyed by
// field name
func GetClientCustomFields(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewClientService(database.GetDB())
	if _, err := svc.GetByID(id); err != nil {
		return serviceError(c, err, "client not found")
	}

	values, err := svc.GetCustomValues(id)
	if err != nil {
		logger.FromEcho(c).Error("Failed to load custom fields", zap.String("client_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve custom fields"})
	}

	return c.JSON(http.StatusOK, values)
}

// SaveClientCustomFields replaces all custom field values for a client.
// The body must carry the complete set; anything missing is erased.
func SaveClientCustomFields(c echo.Context) error {
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
	svc := service.NewClientService(database.GetDB())
	if _, err := svc.GetByID(id); err != nil {
		return serviceError(c, err, "client not found")
	}

	if err := svc.SaveCustomValues(id, values); err != nil {
		log.Error("Failed to save custom fields", zap.String("client_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save custom fields"})
	}

	prometheus.RecordCustomFieldSave(model.FormTypeClient)
	log.Info("Client custom fields saved", zap.String("client_id", id), zap.Int("count", len(values)))
	return c.JSON(http.StatusOK, echo.Map{"message": "custom fields saved"})
}
