package auth

import (
	"context"
	"testing"
	"time"

	"github.com/SahilSawant11/mizu/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-1", testSecret, time.Minute)
	require.NoError(t, err)

	userID, err := GetUserIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, testSecret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := GetUserIDFromToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_EmptyUserID(t *testing.T) {
	token, err := GenerateToken("", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewTokenSession(testSecret)

	_, err := s.CurrentUserID(ctx)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	token, err := GenerateToken("user-7", testSecret, time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.Login(token))

	userID, err := s.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-7", userID)

	s.Logout()
	_, err = s.CurrentUserID(ctx)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestSingleUser_AlwaysResolves(t *testing.T) {
	userID, err := SingleUser{}.CurrentUserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", userID)
}
