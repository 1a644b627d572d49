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

// PhoneNumberRequest defines the structure for phone number requests
type PhoneNumberRequest struct {
	Phone     string `json:"phone"`
	PhoneType string `json:"phone_type"`
}

// ListPhoneNumbers handles retrieving a client's phone numbers
func ListPhoneNumbers(c echo.Context) error {
	log := logger.FromEcho(c)
	clientID := c.Param("id")

	clientSvc := service.NewClientService(database.GetDB())
	if _, err := clientSvc.GetByID(clientID); err != nil {
		return serviceError(c, err, "client not found")
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewPhoneNumberService(database.GetDB())
	numbers, err := svc.ListByClient(clientID)
	if err != nil {
		log.Error("Failed to list phone numbers", zap.String("client_id", clientID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve phone numbers"})
	}

	return c.JSON(http.StatusOK, numbers)
}

// CreatePhoneNumber handles adding a phone number to a client. The number is
// normalized to display format before storage.
func CreatePhoneNumber(c echo.Context) error {
	log := logger.FromEcho(c)
	clientID := c.Param("id")

	var req PhoneNumberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone is required"})
	}

	clientSvc := service.NewClientService(database.GetDB())
	if _, err := clientSvc.GetByID(clientID); err != nil {
		return serviceError(c, err, "client not found")
	}

	number := model.PhoneNumber{
		ClientID:  clientID,
		Phone:     req.Phone,
		PhoneType: req.PhoneType,
	}
	if number.PhoneType == "" {
		number.PhoneType = model.PhoneTypeMain
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewPhoneNumberService(database.GetDB())
	if err := svc.Create(&number); err != nil {
		log.Error("Failed to create phone number", zap.String("client_id", clientID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create phone number"})
	}

	log.Info("Phone number created",
		zap.String("client_id", clientID),
		zap.String("phone_id", number.ID))
	return c.JSON(http.StatusCreated, number)
}

// DeletePhoneNumber handles removing a phone number
func DeletePhoneNumber(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("phoneId")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewPhoneNumberService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "phone number not found")
	}

	log.Info("Phone number deleted", zap.String("phone_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "phone number deleted"})
}
