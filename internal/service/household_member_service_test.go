package service

import (
	"testing"

	"casecare-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestRelationship(t *testing.T, db *gorm.DB, name string) *model.Relationship {
	t.Helper()
	relationship := &model.Relationship{Name: name, IsActive: true}
	require.NoError(t, db.Create(relationship).Error)
	return relationship
}

func TestHouseholdMemberListPreloadsRelationship(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdMemberService(db)

	client := createTestClient(t, db, "The Wilson Family")
	child := createTestRelationship(t, db, "Child")

	require.NoError(t, svc.Create(&model.HouseholdMember{ClientID: client.ID, RelationshipID: child.ID, Name: "Ana Wilson"}))

	members, err := svc.ListByClient(client.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NotNil(t, members[0].Relationship)
	assert.Equal(t, "Child", members[0].Relationship.Name)
}

func TestHouseholdMemberReplaceForClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdMemberService(db)

	client := createTestClient(t, db, "The Wilson Family")
	otherClient := createTestClient(t, db, "The Garcia Family")
	self := createTestRelationship(t, db, "Self")
	child := createTestRelationship(t, db, "Child")

	require.NoError(t, svc.Create(&model.HouseholdMember{ClientID: client.ID, RelationshipID: self.ID, Name: "James Wilson"}))
	require.NoError(t, svc.Create(&model.HouseholdMember{ClientID: otherClient.ID, RelationshipID: self.ID, Name: "Maria Garcia"}))

	require.NoError(t, svc.ReplaceForClient(client.ID, []model.HouseholdMember{
		{Name: "Ana Wilson", RelationshipID: child.ID},
		{Name: "Ben Wilson", RelationshipID: child.ID},
	}))

	members, err := svc.ListByClient(client.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Ana Wilson", members[0].Name)
	assert.Equal(t, "Ben Wilson", members[1].Name)

	// other households are untouched
	others, err := svc.ListByClient(otherClient.ID)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestHouseholdMemberUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdMemberService(db)

	client := createTestClient(t, db, "The Wilson Family")
	self := createTestRelationship(t, db, "Self")
	spouse := createTestRelationship(t, db, "Spouse")

	member := &model.HouseholdMember{ClientID: client.ID, RelationshipID: self.ID, Name: "James Wilson"}
	require.NoError(t, svc.Create(member))

	updated, err := svc.Update(member.ID, &model.HouseholdMember{Name: "James R Wilson", RelationshipID: spouse.ID})
	require.NoError(t, err)
	assert.Equal(t, "James R Wilson", updated.Name)
	assert.Equal(t, spouse.ID, updated.RelationshipID)

	require.NoError(t, svc.Delete(member.ID))
	_, err = svc.GetByID(member.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(member.ID), ErrNotFound)
}

func TestRelationshipDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelationshipService(db)

	require.NoError(t, svc.Create(&model.Relationship{Name: "Self", IsActive: true}))
	grandparent := &model.Relationship{Name: "Grandparent", IsActive: true}
	require.NoError(t, svc.Create(grandparent))

	require.NoError(t, svc.Delete(grandparent.ID))

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Self", active[0].Name)

	// the row itself survives for existing references
	var count int64
	db.Model(&model.Relationship{}).Where("id = ?", grandparent.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRelationshipCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelationshipService(db)

	require.NoError(t, svc.Create(&model.Relationship{Name: "Self", IsActive: true}))
	assert.ErrorIs(t, svc.Create(&model.Relationship{Name: "Self", IsActive: true}), ErrDuplicateName)
}
