package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	userID := uuid.New()

	access, refresh, err := GenerateTokenPair(userID, "alice", "v1")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "v1", claims.TokenVersion)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	claims, err = ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenTypeConfusionRejected(t *testing.T) {
	access, refresh, err := GenerateTokenPair(uuid.New(), "bob", "v1")
	require.NoError(t, err)

	_, err = ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
