package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key")

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	orgID := uuid.NewString()

	signed, jti, err := GenerateAccessToken(userID, orgID, testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, jti)

	claims, err := VerifyToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, orgID, claims.OrgID)
	assert.Equal(t, jti, claims.ID)
}

func TestAccessTokenWithoutOrg(t *testing.T) {
	signed, _, err := GenerateAccessToken(uuid.New(), "", testSecret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(signed, testSecret)
	require.NoError(t, err)
	assert.Empty(t, claims.OrgID)
}

func TestVerifyTokenExpired(t *testing.T) {
	signed, _, err := GenerateAccessToken(uuid.New(), "", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(signed, testSecret)
	assert.Error(t, err)
}

func TestVerifyTokenWrongKey(t *testing.T) {
	signed, _, err := GenerateAccessToken(uuid.New(), "", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(signed, []byte("other-secret"))
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestAccessTokenJTIUnique(t *testing.T) {
	_, jti1, err := GenerateAccessToken(uuid.New(), "", testSecret, time.Minute)
	require.NoError(t, err)
	_, jti2, err := GenerateAccessToken(uuid.New(), "", testSecret, time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
}

func TestRefreshTokenHashVerify(t *testing.T) {
	refreshToken, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, refreshToken)

	hash := HashRefreshToken(refreshToken)
	assert.NotEqual(t, refreshToken, hash)

	assert.True(t, VerifyRefreshToken(refreshToken, hash))
	assert.False(t, VerifyRefreshToken("tampered", hash))
}

func TestRefreshTokensUnique(t *testing.T) {
	first, err := GenerateRefreshToken()
	require.NoError(t, err)
	second, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
