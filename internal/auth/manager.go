package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fantasyboard/fb-tui/internal/encoding"
)

var (
	// ErrSessionExpired is the terminal state after a failed refresh. Every
	// dependent data accessor returns it synchronously, without touching
	// the network, until the user signs in again.
	ErrSessionExpired = errors.New("session expired")

	errTokenRefresh = errors.New("token refresh failed")
)

// Endpoint describes the identity provider's token endpoints.
type Endpoint struct {
	TokenURL     string
	RevokeURL    string
	ClientID     string
	ClientSecret string
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Error        string `json:"error"`
	ErrorDesc    string `json:"error_description"`
}

// Manager holds the credential and transparently refreshes it when the
// access token expires. A refresh failure is terminal for the session: the
// credential is poisoned, the sign-out callback fires exactly once, and no
// further refresh is attempted. A stale refresh token must not turn into a
// retry storm against the identity provider.
type Manager struct {
	mu        sync.RWMutex
	cred      Credential
	endpoint  Endpoint
	client    *http.Client
	onSignOut func()
	signOut   sync.Once
	now       func() time.Time
}

func NewManager(cred Credential, endpoint Endpoint, client *http.Client, onSignOut func()) *Manager {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if onSignOut == nil {
		onSignOut = func() {}
	}

	return &Manager{
		cred:      cred,
		endpoint:  endpoint,
		client:    client,
		onSignOut: onSignOut,
		now:       time.Now,
	}
}

// Credential returns a copy of the current credential state.
func (m *Manager) Credential() Credential {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cred
}

// Token returns a usable access token, refreshing it first when expired.
// An expired token with no refresh token is returned unchanged; the
// upstream will reject it and that surfaces as a normal fetch error.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	cred := m.cred
	m.mu.RUnlock()

	if cred.Invalid {
		return "", ErrSessionExpired
	}

	if !cred.Expired(m.now()) {
		return cred.AccessToken, nil
	}

	if cred.RefreshToken == "" {
		return cred.AccessToken, nil
	}

	refreshed, errRefresh := m.refresh(ctx, cred)
	if errRefresh != nil {
		slog.Error("Token refresh failed, invalidating session", slog.String("error", errRefresh.Error()))
		m.Invalidate()

		return "", ErrSessionExpired
	}

	m.mu.Lock()
	// A concurrent refresh may have landed first; both tokens are equally
	// valid, last writer wins.
	if !m.cred.Invalid {
		m.cred = refreshed
	}
	cred = m.cred
	m.mu.Unlock()

	if cred.Invalid {
		return "", ErrSessionExpired
	}

	return cred.AccessToken, nil
}

// Invalidate poisons the credential and fires the sign-out side effect
// exactly once.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.cred.Invalid = true
	m.mu.Unlock()

	m.signOut.Do(m.onSignOut)
}

func (m *Manager) refresh(ctx context.Context, cred Credential) (Credential, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", cred.RefreshToken)

	req, errReq := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint.TokenURL,
		strings.NewReader(form.Encode()))
	if errReq != nil {
		return Credential{}, errors.Join(errReq, errTokenRefresh)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(m.endpoint.ClientID, m.endpoint.ClientSecret)

	resp, errResp := m.client.Do(req)
	if errResp != nil {
		return Credential{}, errors.Join(errResp, errTokenRefresh)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close token response body", slog.String("error", err.Error()))
		}
	}()

	tokens, errTokens := encoding.UnmarshalJSON[tokenResponse](resp.Body)
	if errTokens != nil {
		return Credential{}, errors.Join(errTokens, errTokenRefresh)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || tokens.AccessToken == "" {
		slog.Error("Refresh grant rejected", slog.Int("status", resp.StatusCode),
			slog.String("code", tokens.Error), slog.String("description", tokens.ErrorDesc))

		return Credential{}, errTokenRefresh
	}

	refreshToken := tokens.RefreshToken
	if refreshToken == "" {
		// Provider did not rotate the refresh token, keep the old one.
		refreshToken = cred.RefreshToken
	}

	return Credential{
		AccessToken:  tokens.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    m.now().Unix() + tokens.ExpiresIn,
	}, nil
}

// Revoke tells the identity provider to drop the current access token.
// Best effort, used during sign-out.
func (m *Manager) Revoke(ctx context.Context) error {
	cred := m.Credential()
	if cred.AccessToken == "" || m.endpoint.RevokeURL == "" {
		return nil
	}

	form := url.Values{}
	form.Set("token", cred.AccessToken)

	req, errReq := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint.RevokeURL,
		strings.NewReader(form.Encode()))
	if errReq != nil {
		return errors.Join(errReq, errTokenRefresh)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(m.endpoint.ClientID, m.endpoint.ClientSecret)

	resp, errResp := m.client.Do(req)
	if errResp != nil {
		return errors.Join(errResp, errTokenRefresh)
	}

	return resp.Body.Close()
}
