package service

import (
	"testing"

	"casecare-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneNumberCreateNormalizesFormat(t *testing.T) {
	db := newTestDB(t)
	svc := NewPhoneNumberService(db)

	client := createTestClient(t, db, "The Wilson Family")

	number := &model.PhoneNumber{ClientID: client.ID, Phone: "555.123.4567", PhoneType: model.PhoneTypeMobile}
	require.NoError(t, svc.Create(number))
	assert.Equal(t, "(555) 123-4567", number.Phone)

	// non-10-digit input is stored as given
	intl := &model.PhoneNumber{ClientID: client.ID, Phone: "+44 20 7946 0958", PhoneType: model.PhoneTypeWork}
	require.NoError(t, svc.Create(intl))
	assert.Equal(t, "+44 20 7946 0958", intl.Phone)

	numbers, err := svc.ListByClient(client.ID)
	require.NoError(t, err)
	assert.Len(t, numbers, 2)
}

func TestPhoneNumberDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPhoneNumberService(db)

	client := createTestClient(t, db, "The Wilson Family")
	number := &model.PhoneNumber{ClientID: client.ID, Phone: "5551234567", PhoneType: model.PhoneTypeMain}
	require.NoError(t, svc.Create(number))

	require.NoError(t, svc.Delete(number.ID))
	assert.ErrorIs(t, svc.Delete(number.ID), ErrNotFound)
}
