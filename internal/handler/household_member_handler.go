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

// HouseholdMemberRequest defines the structure for household member requests
type HouseholdMemberRequest struct {
	RelationshipID string     `json:"relationship_id"`
	Name           string     `json:"name"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Notes          *string    `json:"notes"`
}

func (r *HouseholdMemberRequest) toModel(clientID string) model.HouseholdMember {
	return model.HouseholdMember{
		ClientID:       clientID,
		RelationshipID: r.RelationshipID,
		Name:           r.Name,
		DateOfBirth:    r.DateOfBirth,
		Notes:          r.Notes,
	}
}

// ListHouseholdMembers handles retrieving a client's household members
func ListHouseholdMembers(c echo.Context) error {
	log := logger.FromEcho(c)
	clientID := c.Param("id")

	clientSvc := service.NewClientService(database.GetDB())
	if _, err := clientSvc.GetByID(clientID); err != nil {
		return serviceError(c, err, "client not found")
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewHouseholdMemberService(database.GetDB())
	members, err := svc.ListByClient(clientID)
	if err != nil {
		log.Error("Failed to list household members", zap.String("client_id", clientID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve household members"})
	}

	return c.JSON(http.StatusOK, members)
}

// CreateHouseholdMember handles adding a household member to a client
func CreateHouseholdMember(c echo.Context) error {
	log := logger.FromEcho(c)
	clientID := c.Param("id")

	var req HouseholdMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" || req.RelationshipID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and relationship_id are required"})
	}

	clientSvc := service.NewClientService(database.GetDB())
	if _, err := clientSvc.GetByID(clientID); err != nil {
		return serviceError(c, err, "client not found")
	}

	member := req.toModel(clientID)
	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewHouseholdMemberService(database.GetDB())
	if err := svc.Create(&member); err != nil {
		log.Error("Failed to create household member", zap.String("client_id", clientID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create household member"})
	}

	log.Info("Household member created",
		zap.String("client_id", clientID),
		zap.String("member_id", member.ID))
	return c.JSON(http.StatusCreated, member)
}

// ReplaceHouseholdMembers handles replacing a client's full household roster
func ReplaceHouseholdMembers(c echo.Context) error {
	log := logger.FromEcho(c)
	clientID := c.Param("id")

	var reqs []HouseholdMemberRequest
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	clientSvc := service.NewClientService(database.GetDB())
	if _, err := clientSvc.GetByID(clientID); err != nil {
		return serviceError(c, err, "client not found")
	}

	members := make([]model.HouseholdMember, 0, len(reqs))
	for _, r := range reqs {
		if r.Name == "" || r.RelationshipID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and relationship_id are required"})
		}
		members = append(members, r.toModel(clientID))
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewHouseholdMemberService(database.GetDB())
	if err := svc.ReplaceForClient(clientID, members); err != nil {
		log.Error("Failed to replace household members", zap.String("client_id", clientID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to replace household members"})
	}

	saved, err := svc.ListByClient(clientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve household members"})
	}

	log.Info("Household members replaced",
		zap.String("client_id", clientID),
		zap.Int("count", len(saved)))
	return c.JSON(http.StatusOK, saved)
}

// UpdateHouseholdMember handles editing one household member
func UpdateHouseholdMember(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("memberId")

	var req HouseholdMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := model.HouseholdMember{
		RelationshipID: req.RelationshipID,
		Name:           req.Name,
		DateOfBirth:    req.DateOfBirth,
		Notes:          req.Notes,
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewHouseholdMemberService(database.GetDB())
	member, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "household member not found")
	}

	log.Info("Household member updated", zap.String("member_id", id))
	return c.JSON(http.StatusOK, member)
}

// DeleteHouseholdMember handles removing one household member
func DeleteHouseholdMember(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("memberId")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewHouseholdMemberService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		return serviceError(c, err, "household member not found")
	}

	log.Info("Household member deleted", zap.String("member_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "household member deleted"})
}
