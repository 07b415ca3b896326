package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist-api/domain/models"
)

const testSecret = "test-secret-key"

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "user@example.com",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	user := testUser()
	tokenID := uuid.NewString()

	token, err := GenerateToken(user, tokenID, time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userCtx, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.ID)
	assert.Equal(t, user.Email, userCtx.Email)
	assert.Equal(t, tokenID, userCtx.TokenID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testUser(), uuid.NewString(), time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(testUser(), uuid.NewString(), time.Now().Add(-time.Minute), testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenMissing(t *testing.T) {
	_, err := ValidateToken("", testSecret)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.jwt", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Tokens without a jti cannot key a session row, so they are rejected.
func TestValidateTokenRequiresTokenID(t *testing.T) {
	token, err := GenerateToken(testUser(), "", time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"valid bearer", "Bearer abc123", "abc123"},
		{"empty header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
		{"extra parts", "Bearer abc 123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTokenFromHeader(tt.header))
		})
	}
}
