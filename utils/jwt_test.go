// file: utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsfest/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		ID:        42,
		RegNumber: "REG2023001",
		Role:      models.RoleAdmin,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), claims.UserID)
	assert.Equal(t, "REG2023001", claims.RegNumber)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
