package service

import (
	"testing"

	"casecare-service/internal/model"
	"casecare-service/pkg/encryption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestClient(t *testing.T, db *gorm.DB, name string) *model.Client {
	t.Helper()
	client := &model.Client{Name: name, Contact: "Primary Contact", Children: 1, Status: model.ClientStatusActive}
	require.NoError(t, NewClientService(db).Create(client, nil))
	return client
}

func TestClientSSNEncryptedAndMasked(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)

	client := &model.Client{
		Name:     "The Thompson Family",
		Contact:  "Emily Thompson",
		Children: 2,
		Status:   model.ClientStatusActive,
		SSN:      "123-45-6789",
	}
	require.NoError(t, svc.Create(client, nil))

	// stored ciphertext must not be the plain value but must decrypt to it
	var stored model.Client
	require.NoError(t, db.First(&stored, "id = ?", client.ID).Error)
	assert.NotEqual(t, "123-45-6789", stored.SSN)
	assert.Equal(t, "123-45-6789", encryption.Decrypt(stored.SSN))
	assert.Equal(t, "***-**-6789", stored.MaskedSSN)

	// read path exposes only the mask
	loaded, err := svc.GetByID(client.ID)
	require.NoError(t, err)
	assert.Equal(t, "***-**-6789", loaded.MaskedSSN)
}

func TestClientUpdateLeavesSSNWhenPatchEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)

	client := &model.Client{Name: "The Garcia Family", Contact: "Maria Garcia", Children: 1, Status: model.ClientStatusPending, SSN: "987-65-4321"}
	require.NoError(t, svc.Create(client, nil))
	originalCiphertext := client.SSN

	updated, err := svc.Update(client.ID, &model.Client{
		Name:     "The Garcia Family",
		Contact:  "Maria Garcia",
		Children: 2,
		Status:   model.ClientStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Children)
	assert.Equal(t, originalCiphertext, updated.SSN)
	assert.Equal(t, "4321", updated.SSNLast4)
}

func TestClientCustomValuesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	fieldSvc := NewFormFieldService(db)
	svc := NewClientService(db)

	createField(t, fieldSvc, model.FormTypeClient, "allergies", nil)
	createField(t, fieldSvc, model.FormTypeClient, "preferred_language", nil)

	client := createTestClient(t, db, "The Wilson Family")

	require.NoError(t, svc.SaveCustomValues(client.ID, map[string]string{
		"allergies":          "peanuts",
		"preferred_language": "Spanish",
		"unknown_field":      "dropped silently",
	}))

	values, err := svc.GetCustomValues(client.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"allergies":          "peanuts",
		"preferred_language": "Spanish",
	}, values)
}

func TestClientSaveCustomValuesReplacesAll(t *testing.T) {
	db := newTestDB(t)
	fieldSvc := NewFormFieldService(db)
	svc := NewClientService(db)

	createField(t, fieldSvc, model.FormTypeClient, "allergies", nil)
	createField(t, fieldSvc, model.FormTypeClient, "preferred_language", nil)

	client := createTestClient(t, db, "The Wilson Family")

	require.NoError(t, svc.SaveCustomValues(client.ID, map[string]string{
		"allergies":          "peanuts",
		"preferred_language": "Spanish",
	}))

	// a partial second save drops the omitted key
	require.NoError(t, svc.SaveCustomValues(client.ID, map[string]string{
		"allergies": "none",
	}))
	values, err := svc.GetCustomValues(client.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"allergies": "none"}, values)

	// an empty save clears everything
	require.NoError(t, svc.SaveCustomValues(client.ID, map[string]string{}))
	values, err = svc.GetCustomValues(client.ID)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestClientCustomValuesOrphanKeyedByFieldID(t *testing.T) {
	db := newTestDB(t)
	fieldSvc := NewFormFieldService(db)
	svc := NewClientService(db)

	field := createField(t, fieldSvc, model.FormTypeClient, "allergies", nil)
	client := createTestClient(t, db, "The Wilson Family")

	require.NoError(t, svc.SaveCustomValues(client.ID, map[string]string{"allergies": "peanuts"}))

	// delete the definition out from under the stored value
	require.NoError(t, db.Delete(&model.FormField{}, "id = ?", field.ID).Error)

	values, err := svc.GetCustomValues(client.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{field.ID: "peanuts"}, values)
}

func TestClientDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	fieldSvc := NewFormFieldService(db)
	svc := NewClientService(db)

	createField(t, fieldSvc, model.FormTypeClient, "allergies", nil)
	client := createTestClient(t, db, "The Wilson Family")
	require.NoError(t, svc.SaveCustomValues(client.ID, map[string]string{"allergies": "peanuts"}))

	relationship := &model.Relationship{Name: "Child", IsActive: true}
	require.NoError(t, db.Create(relationship).Error)
	require.NoError(t, db.Create(&model.HouseholdMember{ClientID: client.ID, RelationshipID: relationship.ID, Name: "Ana Wilson"}).Error)
	require.NoError(t, db.Create(&model.PhoneNumber{ClientID: client.ID, Phone: "(555) 123-4567", PhoneType: model.PhoneTypeMain}).Error)

	require.NoError(t, svc.Delete(client.ID))

	_, err := svc.GetByID(client.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&model.ClientCustomField{}).Where("client_id = ?", client.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.HouseholdMember{}).Where("client_id = ?", client.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.PhoneNumber{}).Where("client_id = ?", client.ID).Count(&count)
	assert.Zero(t, count)
}

func TestClientDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)
	assert.ErrorIs(t, svc.Delete("no-such-id"), ErrNotFound)
}

func TestClientListByCaseManager(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)

	manager := createTestUser(t, db, "Emily Williams", "emily@example.com", model.RoleCaseManager)
	other := createTestUser(t, db, "Michael Chen", "michael@example.com", model.RoleManager)

	require.NoError(t, svc.Create(&model.Client{Name: "B Family", Contact: "B", Children: 1, Status: model.ClientStatusActive, CaseManagerID: &manager.ID}, nil))
	require.NoError(t, svc.Create(&model.Client{Name: "A Family", Contact: "A", Children: 1, Status: model.ClientStatusActive, CaseManagerID: &manager.ID}, nil))
	require.NoError(t, svc.Create(&model.Client{Name: "C Family", Contact: "C", Children: 1, Status: model.ClientStatusActive, CaseManagerID: &other.ID}, nil))

	clients, err := svc.ListByCaseManager(manager.ID)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "A Family", clients[0].Name)
	assert.Equal(t, "B Family", clients[1].Name)
	require.NotNil(t, clients[0].CaseManager)
	assert.Equal(t, "Emily Williams", clients[0].CaseManager.Name)
}
