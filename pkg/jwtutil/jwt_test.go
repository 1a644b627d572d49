package jwtutil

import (
	"os"
	"testing"

	"casecare-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Initialize(&config.JWTConfig{SigningKey: "unit-test-signing-key", ExpirationHours: 1})
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "emily@example.com", "Case Manager")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "emily@example.com", claims.Email)
	assert.Equal(t, "Case Manager", claims.Role)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-1", "emily@example.com", "Admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not.a.token")
	assert.Error(t, err)
}
