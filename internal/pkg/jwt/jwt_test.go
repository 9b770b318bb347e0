package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testExpiration = "1h"
	testCookieName = "session_token"
)

func TestGenerateSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, testExpiration, testCookieName)

	token, expiresAt, err := svc.GenerateSessionToken("user-1", "jo@example.com", user.RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jo@example.com", claims["email"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, testExpiration, testCookieName)
	verifier := NewJWTService("a-different-secret", testExpiration, testCookieName)

	token, _, err := issuer.GenerateSessionToken("user-1", "jo@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}

func TestGenerateSessionTokenBadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", testCookieName)

	_, _, err := svc.GenerateSessionToken("user-1", "jo@example.com", user.RoleEmployee)
	assert.Error(t, err)
}

func TestSessionCookie(t *testing.T) {
	svc := NewJWTService(testSecret, testExpiration, testCookieName)

	expiresAt := time.Now().Add(time.Hour).Unix()
	cookie := svc.SessionCookie("tok", expiresAt)
	assert.Equal(t, testCookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, time.Unix(expiresAt, 0).Unix(), cookie.Expires.Unix())
}

func TestClearSessionCookie(t *testing.T) {
	svc := NewJWTService(testSecret, testExpiration, testCookieName)

	cookie := svc.ClearSessionCookie()
	assert.Equal(t, testCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
