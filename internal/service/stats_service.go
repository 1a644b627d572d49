package service

import (
	"casecare-service/internal/model"

	"gorm.io/gorm"
)

// StatsService computes the read-only dashboard aggregates. Nothing is
// cached; every call recomputes from the current rows.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// DashboardStats aggregates client, provider, and task counts. Non-admin
// callers with a case manager id see only their own caseload; admins see
// everything.
func (s *StatsService) DashboardStats(caseManagerID string, isAdmin bool) (*model.DashboardStats, error) {
	scoped := !isAdmin && caseManagerID != ""

	clientsQuery := s.db.Model(&model.Client{})
	if scoped {
		clientsQuery = clientsQuery.Where("case_manager_id = ?", caseManagerID)
	}

	var clients []model.Client
	if err := clientsQuery.Find(&clients).Error; err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{TotalClients: len(clients)}
	for _, c := range clients {
		switch c.Status {
		case model.ClientStatusActive:
			stats.ActiveClients++
		case model.ClientStatusPending:
			stats.PendingApplications++
		}
		stats.ChildrenPlaced += c.Children
	}

	var providerCount int64
	err := s.db.Model(&model.Provider{}).
		Where("status = ?", model.ProviderStatusVerified).
		Count(&providerCount).Error
	if err != nil {
		return nil, err
	}
	stats.ActiveProviders = int(providerCount)

	tasksQuery := s.db.Model(&model.TaskItem{}).
		Where("status != ?", model.TaskStatusCompleted)
	if scoped {
		tasksQuery = tasksQuery.Where("assignee_id = ?", caseManagerID)
	}
	if err := tasksQuery.Count(&stats.PendingTasks).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
