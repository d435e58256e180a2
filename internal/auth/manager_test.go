package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fantasyboard/fb-tui/internal/auth"
	"github.com/stretchr/testify/require"
)

func TestTokenValidPassthrough(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	manager := auth.NewManager(auth.Credential{
		AccessToken:  "live",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}, auth.Endpoint{TokenURL: server.URL}, server.Client(), nil)

	token, err := manager.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "live", token)
	require.Zero(t, hits.Load())
}

func TestTokenUnknownExpiryNeverRefreshes(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	manager := auth.NewManager(auth.Credential{AccessToken: "live", RefreshToken: "refresh"},
		auth.Endpoint{TokenURL: server.URL}, server.Client(), nil)

	token, err := manager.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "live", token)
	require.Zero(t, hits.Load())
}

func TestTokenRefreshRotation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		require.Equal(t, "refresh_token", req.PostForm.Get("grant_type"))
		require.Equal(t, "old-refresh", req.PostForm.Get("refresh_token"))

		user, pass, ok := req.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "client-id", user)
		require.Equal(t, "client-secret", pass)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"access_token":"fresh","refresh_token":"rotated","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	manager := auth.NewManager(
		auth.Credential{AccessToken: "stale", RefreshToken: "old-refresh", ExpiresAt: 1},
		auth.Endpoint{TokenURL: server.URL, ClientID: "client-id", ClientSecret: "client-secret"},
		server.Client(), nil)

	token, err := manager.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fresh", token)

	cred := manager.Credential()
	require.Equal(t, "rotated", cred.RefreshToken)
	require.Greater(t, cred.ExpiresAt, time.Now().Unix())
	require.False(t, cred.Invalid)
}

func TestTokenRefreshKeepsOldRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"access_token":"fresh","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	manager := auth.NewManager(
		auth.Credential{AccessToken: "stale", RefreshToken: "keeper", ExpiresAt: 1},
		auth.Endpoint{TokenURL: server.URL}, server.Client(), nil)

	_, err := manager.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "keeper", manager.Credential().RefreshToken)
}

func TestTokenRefreshFailureIsTerminal(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`{"error":"invalid_grant","error_description":"refresh token expired"}`))
	}))
	defer server.Close()

	var signOuts atomic.Int32
	manager := auth.NewManager(
		auth.Credential{AccessToken: "stale", RefreshToken: "dead", ExpiresAt: 1},
		auth.Endpoint{TokenURL: server.URL}, server.Client(),
		func() { signOuts.Add(1) })

	_, err := manager.Token(context.Background())
	require.ErrorIs(t, err, auth.ErrSessionExpired)
	require.EqualValues(t, 1, hits.Load())
	require.EqualValues(t, 1, signOuts.Load())
	require.True(t, manager.Credential().Invalid)

	// Every further call fails synchronously without touching the network
	// and without firing sign-out again.
	for range 3 {
		_, errAgain := manager.Token(context.Background())
		require.ErrorIs(t, errAgain, auth.ErrSessionExpired)
	}
	require.EqualValues(t, 1, hits.Load())
	require.EqualValues(t, 1, signOuts.Load())

	manager.Invalidate()
	require.EqualValues(t, 1, signOuts.Load())
}

func TestTokenExpiredWithoutRefreshToken(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	manager := auth.NewManager(auth.Credential{AccessToken: "stale", ExpiresAt: 1},
		auth.Endpoint{TokenURL: server.URL}, server.Client(), nil)

	token, err := manager.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "stale", token)
	require.Zero(t, hits.Load())
}

func TestRevoke(t *testing.T) {
	var revoked atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		require.Equal(t, "live", req.PostForm.Get("token"))
		revoked.Add(1)
	}))
	defer server.Close()

	manager := auth.NewManager(auth.Credential{AccessToken: "live"},
		auth.Endpoint{RevokeURL: server.URL}, server.Client(), nil)

	require.NoError(t, manager.Revoke(context.Background()))
	require.EqualValues(t, 1, revoked.Load())
}

func TestCredentialExpired(t *testing.T) {
	now := time.Unix(1000, 0)
	require.False(t, auth.Credential{}.Expired(now))
	require.False(t, auth.Credential{ExpiresAt: 1001}.Expired(now))
	require.True(t, auth.Credential{ExpiresAt: 1000}.Expired(now))
	require.True(t, auth.Credential{ExpiresAt: 999}.Expired(now))
}
