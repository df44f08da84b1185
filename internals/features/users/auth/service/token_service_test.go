package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice_backend/internals/configs"
)

func setupSecrets(t *testing.T) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	configs.AccessTokenTTL = 30 * time.Minute
	configs.RefreshTokenTTL = 168 * time.Hour
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setupSecrets(t)

	token, exp, err := IssueRefreshToken(42, time.Now())
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now().Add(167*time.Hour)))

	id, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	setupSecrets(t)

	// an access token is signed with the other secret and lacks token_type
	access, _, err := IssueAccessToken(42, "teacher", time.Now())
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsExpired(t *testing.T) {
	setupSecrets(t)

	token, _, err := IssueRefreshToken(42, time.Now().Add(-200*time.Hour))
	require.NoError(t, err)

	_, err = ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	setupSecrets(t)

	_, err := ParseRefreshToken("not-a-jwt")
	assert.Error(t, err)
}
