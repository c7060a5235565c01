package identity

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/devnest/cli/pkg/config"
	"github.com/devnest/cli/pkg/credentials"
	cerrors "github.com/devnest/cli/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))
}

func TestEstablishAndClearNotifySubscribers(t *testing.T) {
	initTestConfig(t)

	var notified []*Session
	sub := Subscribe(func(s *Session) {
		notified = append(notified, s)
	})
	defer Unsubscribe(sub)

	// Fires immediately with the current (logged-out) state
	require.Len(t, notified, 1)
	assert.Nil(t, notified[0])

	creds, err := Establish(&TokenResponse{
		IDToken:      "id-tok",
		RefreshToken: "refresh-tok",
		ExpiresIn:    3600,
		UserID:       "u1",
		Email:        "alice@example.com",
		DisplayName:  "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", creds.Label())

	require.Len(t, notified, 2)
	require.NotNil(t, notified[1])
	assert.Equal(t, "u1", notified[1].UserID)

	require.NoError(t, Clear())
	require.Len(t, notified, 3)
	assert.Nil(t, notified[2])
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	initTestConfig(t)

	count := 0
	sub := Subscribe(func(s *Session) { count++ })
	assert.Equal(t, 1, count)

	Unsubscribe(sub)

	_, err := Establish(&TokenResponse{IDToken: "t", ExpiresIn: 3600, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFreshTokenRequiresSession(t *testing.T) {
	initTestConfig(t)

	_, err := FreshToken()
	require.Error(t, err)
	assert.True(t, cerrors.IsAuthRequired(err))
}

func TestFreshTokenReturnsValidTokenWithoutRefresh(t *testing.T) {
	initTestConfig(t)

	require.NoError(t, credentials.Save(&credentials.Credentials{
		IDToken:      "still-good",
		RefreshToken: "refresh-tok",
		ExpiresAt:    time.Now().Add(time.Hour),
		UserID:       "u1",
	}))

	token, err := FreshToken()
	require.NoError(t, err)
	assert.Equal(t, "still-good", token)
}

func TestFreshTokenRefreshesExpiredToken(t *testing.T) {
	initTestConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"idToken": "renewed", "refreshToken": "refresh-tok", "expiresIn": 3600}`))
	}))
	defer server.Close()
	SetBaseURL(server.URL)

	require.NoError(t, credentials.Save(&credentials.Credentials{
		IDToken:      "stale",
		RefreshToken: "refresh-tok",
		ExpiresAt:    time.Now().Add(-time.Minute),
		UserID:       "u1",
	}))

	token, err := FreshToken()
	require.NoError(t, err)
	assert.Equal(t, "renewed", token)

	// Refreshed token is persisted for the next call
	creds, err := credentials.Load()
	require.NoError(t, err)
	assert.Equal(t, "renewed", creds.IDToken)
	assert.True(t, creds.IsValid())
}

func TestFreshTokenFailedRefreshIsSessionExpired(t *testing.T) {
	initTestConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "TOKEN_EXPIRED"}`))
	}))
	defer server.Close()
	SetBaseURL(server.URL)

	require.NoError(t, credentials.Save(&credentials.Credentials{
		IDToken:      "stale",
		RefreshToken: "dead-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
		UserID:       "u1",
	}))

	_, err := FreshToken()
	require.Error(t, err)
	assert.True(t, cerrors.IsAuthRequired(err))
}
