package service

import (
	"testing"

	"casecare-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsAgencyWide(t *testing.T) {
	db := newTestDB(t)
	clientSvc := NewClientService(db)
	taskSvc := NewTaskService(db)
	svc := NewStatsService(db)

	emily := createTestUser(t, db, "Emily Williams", "emily@example.com", model.RoleCaseManager)

	require.NoError(t, clientSvc.Create(&model.Client{Name: "A", Contact: "a", Children: 2, Status: model.ClientStatusActive, CaseManagerID: &emily.ID}, nil))
	require.NoError(t, clientSvc.Create(&model.Client{Name: "B", Contact: "b", Children: 1, Status: model.ClientStatusPending}, nil))
	require.NoError(t, clientSvc.Create(&model.Client{Name: "C", Contact: "c", Children: 3, Status: model.ClientStatusInactive}, nil))

	require.NoError(t, db.Create(&model.Provider{Name: "Sunshine", Type: model.ProviderTypeCenter, Status: model.ProviderStatusVerified}).Error)
	require.NoError(t, db.Create(&model.Provider{Name: "Pending Place", Type: model.ProviderTypeInHome, Status: model.ProviderStatusPending}).Error)

	createTestTask(t, taskSvc, "open", model.TaskPriorityNormal, model.TaskStatusPending, nil, emily.ID, emily.ID, nil)
	createTestTask(t, taskSvc, "done", model.TaskPriorityNormal, model.TaskStatusCompleted, nil, emily.ID, emily.ID, nil)

	stats, err := svc.DashboardStats("", true)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 1, stats.ActiveClients)
	assert.Equal(t, 1, stats.PendingApplications)
	assert.Equal(t, 6, stats.ChildrenPlaced)
	assert.Equal(t, 1, stats.ActiveProviders)
	assert.EqualValues(t, 1, stats.PendingTasks)
}

func TestDashboardStatsScopedToCaseManager(t *testing.T) {
	db := newTestDB(t)
	clientSvc := NewClientService(db)
	taskSvc := NewTaskService(db)
	svc := NewStatsService(db)

	emily := createTestUser(t, db, "Emily Williams", "emily@example.com", model.RoleCaseManager)
	michael := createTestUser(t, db, "Michael Chen", "michael@example.com", model.RoleManager)

	require.NoError(t, clientSvc.Create(&model.Client{Name: "Mine", Contact: "m", Children: 2, Status: model.ClientStatusActive, CaseManagerID: &emily.ID}, nil))
	require.NoError(t, clientSvc.Create(&model.Client{Name: "Theirs", Contact: "t", Children: 4, Status: model.ClientStatusActive, CaseManagerID: &michael.ID}, nil))

	// providers are always agency-wide
	require.NoError(t, db.Create(&model.Provider{Name: "Sunshine", Type: model.ProviderTypeCenter, Status: model.ProviderStatusVerified}).Error)

	createTestTask(t, taskSvc, "mine", model.TaskPriorityNormal, model.TaskStatusPending, nil, emily.ID, emily.ID, nil)
	createTestTask(t, taskSvc, "theirs", model.TaskPriorityNormal, model.TaskStatusPending, nil, michael.ID, michael.ID, nil)

	scoped, err := svc.DashboardStats(emily.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, scoped.TotalClients)
	assert.Equal(t, 2, scoped.ChildrenPlaced)
	assert.Equal(t, 1, scoped.ActiveProviders)
	assert.EqualValues(t, 1, scoped.PendingTasks)

	// an admin with an id still sees everything
	all, err := svc.DashboardStats(emily.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalClients)
	assert.EqualValues(t, 2, all.PendingTasks)
}
