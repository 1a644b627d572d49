package service

import (
	"testing"

	"casecare-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDerivesAvatarAndPermission(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := &model.User{Name: "Sarah Johnson", Email: "sarah@example.com", Role: model.RoleAdmin, Team: "Administration", Status: model.UserStatusActive}
	require.NoError(t, svc.Create(admin))
	assert.Equal(t, "SJ", admin.Avatar)
	assert.True(t, admin.CanManageUsers)

	coordinator := createTestUser(t, db, "David Martinez", "david@example.com", model.RoleCoordinator)
	loaded, err := svc.GetByID(coordinator.ID)
	require.NoError(t, err)
	assert.False(t, loaded.CanManageUsers)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createTestUser(t, db, "Sarah Johnson", "sarah@example.com", model.RoleAdmin)

	err := svc.Create(&model.User{Name: "Other Sarah", Email: "sarah@example.com", Role: model.RoleCoordinator, Team: "Intake", Status: model.UserStatusActive})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserUpdateRejectsEmailCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createTestUser(t, db, "Sarah Johnson", "sarah@example.com", model.RoleAdmin)
	david := createTestUser(t, db, "David Martinez", "david@example.com", model.RoleCoordinator)

	_, err := svc.Update(david.ID, &model.User{Name: "David Martinez", Email: "sarah@example.com", Role: model.RoleCoordinator, Team: "Intake", Status: model.UserStatusActive})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// keeping their own email is fine
	updated, err := svc.Update(david.ID, &model.User{Name: "David R Martinez", Email: "david@example.com", Role: model.RoleManager, Team: "Intake", Status: model.UserStatusActive})
	require.NoError(t, err)
	assert.Equal(t, "DR", updated.Avatar)
	assert.True(t, updated.CanManageUsers)
}

func TestUserDeleteRefusedWhileTasksExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	taskSvc := NewTaskService(db)

	emily := createTestUser(t, db, "Emily Williams", "emily@example.com", model.RoleCaseManager)
	david := createTestUser(t, db, "David Martinez", "david@example.com", model.RoleCoordinator)

	// creator-only involvement blocks deletion too
	task := createTestTask(t, taskSvc, "call family", model.TaskPriorityNormal, model.TaskStatusPending, nil, emily.ID, david.ID, nil)

	assert.ErrorIs(t, svc.Delete(emily.ID), ErrInUse)
	assert.ErrorIs(t, svc.Delete(david.ID), ErrInUse)

	require.NoError(t, taskSvc.Delete(task.ID))
	assert.NoError(t, svc.Delete(david.ID))
}

func TestUserDeleteReleasesClients(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	clientSvc := NewClientService(db)

	emily := createTestUser(t, db, "Emily Williams", "emily@example.com", model.RoleCaseManager)
	client := &model.Client{Name: "The Wilson Family", Contact: "James Wilson", Children: 3, Status: model.ClientStatusActive, CaseManagerID: &emily.ID}
	require.NoError(t, clientSvc.Create(client, nil))

	require.NoError(t, svc.Delete(emily.ID))

	released, err := clientSvc.GetByID(client.ID)
	require.NoError(t, err)
	assert.Nil(t, released.CaseManagerID)
}

func TestUserDashboardPreferencesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := createTestUser(t, db, "Emily Williams", "emily@example.com", model.RoleCaseManager)

	// never saved yet: the default layout comes back
	prefs, err := svc.GetDashboardPreferences(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDashboardPreferences(), prefs)

	custom := model.DashboardPreferences{
		Version: model.DashboardPreferencesVersion,
		Widgets: []model.DashboardWidget{
			{ID: "total-clients", Visible: true, Order: 0},
			{ID: "pending-tasks", Visible: false, Order: 1},
		},
	}
	require.NoError(t, svc.SaveDashboardPreferences(user.ID, custom))

	prefs, err = svc.GetDashboardPreferences(user.ID)
	require.NoError(t, err)
	assert.Equal(t, custom, prefs)

	assert.ErrorIs(t, svc.SaveDashboardPreferences("no-such-id", custom), ErrNotFound)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "SJ", initials("Sarah Johnson"))
	assert.Equal(t, "MA", initials("Madonna"))
	assert.Equal(t, "??", initials(""))
}
