package security

import (
	"context"
	"testing"
	"time"

	"qna_forum/internal/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestJWT(t *testing.T, exp time.Duration) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: exp,
	}
	InitJWT()
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	initTestJWT(t, 24*time.Hour)

	tokenString, err := GenerateToken("user-123", "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := TokenAuth.Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.NotEmpty(t, token.JwtID())
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.Expiration(), time.Minute)
}

func TestGenerateTokenUniqueJTI(t *testing.T) {
	initTestJWT(t, time.Hour)

	first, err := GenerateToken("user-123", "alice", "alice@example.com")
	require.NoError(t, err)
	second, err := GenerateToken("user-123", "alice", "alice@example.com")
	require.NoError(t, err)

	firstToken, err := TokenAuth.Decode(first)
	require.NoError(t, err)
	secondToken, err := TokenAuth.Decode(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstToken.JwtID(), secondToken.JwtID())
}

func TestExpiredTokenRejected(t *testing.T) {
	initTestJWT(t, -time.Minute)

	tokenString, err := GenerateToken("user-123", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = TokenAuth.Decode(tokenString)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherKeyRejected(t *testing.T) {
	initTestJWT(t, time.Hour)
	tokenString, err := GenerateToken("user-123", "alice", "alice@example.com")
	require.NoError(t, err)

	config.AppConfig.JWTKey = []byte("another-secret")
	InitJWT()

	_, err = TokenAuth.Decode(tokenString)
	assert.Error(t, err)
}

func TestClaimGetters(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id":  "user-123",
		"username": "alice",
		"email":    "alice@example.com",
	}

	id, err := GetUserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)

	username, err := GetUsernameFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	email, err := GetEmailFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestClaimGettersMissing(t *testing.T) {
	claims := jwt.MapClaims{}

	_, err := GetUserIDFromClaims(claims)
	assert.Error(t, err)
	_, err = GetUsernameFromClaims(claims)
	assert.Error(t, err)
	_, err = GetEmailFromClaims(claims)
	assert.Error(t, err)
}
