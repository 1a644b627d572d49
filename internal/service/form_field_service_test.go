package service

import (
	"testing"

	"casecare-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createField(t *testing.T, svc *FormFieldService, formType, name string, sectionID *string) *model.FormField {
	t.Helper()
	field := &model.FormField{
		FormType:   formType,
		SectionID:  sectionID,
		FieldName:  name,
		FieldLabel: name,
		FieldType:  "text",
		Width:      model.FieldWidthFull,
		IsVisible:  true,
	}
	require.NoError(t, svc.Create(field))
	return field
}

func TestFormFieldCreateAppendsOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	a := createField(t, svc, model.FormTypeClient, "allergies", nil)
	b := createField(t, svc, model.FormTypeClient, "preferred_language", nil)
	// orders per form type are independent
	c := createField(t, svc, model.FormTypeProvider, "license_number", nil)

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.Equal(t, 0, c.Order)
}

func TestFormFieldCreateOrdersWithinSection(t *testing.T) {
	db := newTestDB(t)
	sectionSvc := NewFormSectionService(db)
	svc := NewFormFieldService(db)

	section := &model.FormSection{FormType: model.FormTypeClient, Name: "Medical", IsVisible: true}
	require.NoError(t, sectionSvc.Create(section))

	createField(t, svc, model.FormTypeClient, "unsectioned_a", nil)
	createField(t, svc, model.FormTypeClient, "unsectioned_b", nil)

	inSection := createField(t, svc, model.FormTypeClient, "allergies", &section.ID)
	assert.Equal(t, 0, inSection.Order)
}

func TestFormFieldReorder(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	a := createField(t, svc, model.FormTypeClient, "field_a", nil)
	b := createField(t, svc, model.FormTypeClient, "field_b", nil)
	c := createField(t, svc, model.FormTypeClient, "field_c", nil)

	require.NoError(t, svc.Reorder([]string{c.ID, a.ID, b.ID}))

	fields, err := svc.ListByFormType(model.FormTypeClient)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, c.ID, fields[0].ID)
	assert.Equal(t, a.ID, fields[1].ID)
	assert.Equal(t, b.ID, fields[2].ID)
	for i, f := range fields {
		assert.Equal(t, i, f.Order)
	}
}

func TestFormFieldDeleteRefusesSystemField(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	system := &model.FormField{
		FormType:   model.FormTypeClient,
		FieldName:  "name",
		FieldLabel: "Family Name",
		FieldType:  "text",
		Width:      model.FieldWidthFull,
		IsSystem:   true,
		IsVisible:  true,
	}
	require.NoError(t, svc.Create(system))

	err := svc.Delete(system.ID)
	assert.ErrorIs(t, err, ErrSystemEntry)

	_, err = svc.GetByID(system.ID)
	assert.NoError(t, err)
}

func TestFormFieldDeleteCustomField(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	field := createField(t, svc, model.FormTypeClient, "allergies", nil)
	require.NoError(t, svc.Delete(field.ID))

	_, err := svc.GetByID(field.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormFieldUpdateKeepsIdentityAndSystemFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	field := createField(t, svc, model.FormTypeClient, "allergies", nil)

	updated, err := svc.Update(field.ID, &model.FormField{
		FieldName:  "allergy_notes",
		FieldLabel: "Allergy Notes",
		FieldType:  "textarea",
		Required:   true,
		Width:      model.FieldWidthHalf,
		IsVisible:  true,
		IsSystem:   true, // must not stick
	})
	require.NoError(t, err)

	assert.Equal(t, field.ID, updated.ID)
	assert.Equal(t, model.FormTypeClient, updated.FormType)
	assert.Equal(t, "allergy_notes", updated.FieldName)
	assert.Equal(t, "textarea", updated.FieldType)
	assert.True(t, updated.Required)
	assert.False(t, updated.IsSystem)
}

func TestFormFieldCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	createField(t, svc, model.FormTypeClient, "allergies", nil)

	dup := &model.FormField{
		FormType:   model.FormTypeClient,
		FieldName:  "allergies",
		FieldLabel: "Allergies Again",
		FieldType:  "text",
		Width:      model.FieldWidthFull,
		IsVisible:  true,
	}
	assert.ErrorIs(t, svc.Create(dup), ErrDuplicateName)

	// the same name on a different form type is a separate field
	other := &model.FormField{
		FormType:   model.FormTypeProvider,
		FieldName:  "allergies",
		FieldLabel: "Allergies",
		FieldType:  "text",
		Width:      model.FieldWidthFull,
		IsVisible:  true,
	}
	assert.NoError(t, svc.Create(other))
}

func TestFormFieldUpdateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormFieldService(db)

	createField(t, svc, model.FormTypeClient, "allergies", nil)
	field := createField(t, svc, model.FormTypeClient, "preferred_language", nil)

	_, err := svc.Update(field.ID, &model.FormField{
		FieldName:  "allergies",
		FieldLabel: "Allergies",
		FieldType:  "text",
		Width:      model.FieldWidthFull,
		IsVisible:  true,
	})
	assert.ErrorIs(t, err, ErrDuplicateName)

	// keeping its own name is not a collision
	updated, err := svc.Update(field.ID, &model.FormField{
		FieldName:  "preferred_language",
		FieldLabel: "Preferred Language",
		FieldType:  "select",
		Width:      model.FieldWidthFull,
		IsVisible:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "select", updated.FieldType)
}

func TestFormFieldMoveToSection(t *testing.T) {
	db := newTestDB(t)
	sectionSvc := NewFormSectionService(db)
	svc := NewFormFieldService(db)

	section := &model.FormSection{FormType: model.FormTypeClient, Name: "Medical", IsVisible: true}
	require.NoError(t, sectionSvc.Create(section))

	field := createField(t, svc, model.FormTypeClient, "allergies", nil)
	require.NoError(t, svc.MoveToSection(field.ID, &section.ID, 3))

	moved, err := svc.GetByID(field.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.SectionID)
	assert.Equal(t, section.ID, *moved.SectionID)
	assert.Equal(t, 3, moved.Order)

	// back out of any section
	require.NoError(t, svc.MoveToSection(field.ID, nil, 0))
	moved, err = svc.GetByID(field.ID)
	require.NoError(t, err)
	assert.Nil(t, moved.SectionID)

	assert.ErrorIs(t, svc.MoveToSection("missing-id", nil, 0), ErrNotFound)
}

func TestFormSectionDeleteRefusesSystemSection(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormSectionService(db)

	section := &model.FormSection{FormType: model.FormTypeClient, Name: "Family Information", IsSystem: true, IsVisible: true}
	require.NoError(t, svc.Create(section))

	assert.ErrorIs(t, svc.Delete(section.ID), ErrSystemEntry)
}

func TestFormSectionListWithFields(t *testing.T) {
	db := newTestDB(t)
	sectionSvc := NewFormSectionService(db)
	fieldSvc := NewFormFieldService(db)

	section := &model.FormSection{FormType: model.FormTypeClient, Name: "Medical", IsVisible: true}
	require.NoError(t, sectionSvc.Create(section))
	createField(t, fieldSvc, model.FormTypeClient, "allergies", &section.ID)
	createField(t, fieldSvc, model.FormTypeClient, "medications", &section.ID)

	sections, err := sectionSvc.ListWithFields(model.FormTypeClient)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Fields, 2)
	assert.Equal(t, "allergies", sections[0].Fields[0].FieldName)
	assert.Equal(t, "medications", sections[0].Fields[1].FieldName)
}
