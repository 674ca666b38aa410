// Package auth talks to the hosted identity provider. Token issuance is
// entirely the provider's business; this package only requests a session
// with the password grant, creates accounts, and inspects token expiry.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured      = errors.New("auth url or api key is not configured")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Session is an issued credential. The access token goes out as the
// bearer credential on every backend request.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	ExpiresAt    time.Time
}

// Expired reports whether the session's access token is past its exp
// claim. Sessions with no known expiry are assumed live; the backend's
// 401 is the fallback.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.AccessToken == "" {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return now.After(s.ExpiresAt)
}

// Service is the authentication surface the CLI uses.
type Service interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*Session, error)
}

type providerClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewService builds a provider client. baseURL is the identity
// provider's project URL, apiKey its public api key.
func NewService(baseURL, apiKey string, timeout time.Duration) (Service, error) {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	return &providerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (c *providerClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.tokenCall(ctx, "/auth/v1/token?grant_type=password", email, password)
}

func (c *providerClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.tokenCall(ctx, "/auth/v1/signup", email, password)
}

func (c *providerClient) tokenCall(ctx context.Context, path, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity provider error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("malformed identity provider response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("identity provider returned no access token")
	}

	s := &Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		UserID:       tr.User.ID,
		Email:        tr.User.Email,
	}
	s.ExpiresAt = tokenExpiry(tr.AccessToken)
	if s.ExpiresAt.IsZero() && tr.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return s, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// signing key lives with the provider and the backend re-verifies every
// request anyway.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
