package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned by SignIn when the server rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("client: invalid credentials")

// Identity is the signed-in user as reported by the server.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Credentials is an issued session.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     Identity
}

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("client: server returned %d", e.Status)
	}
	return fmt.Sprintf("client: server returned %d: %s", e.Status, e.Message)
}

// HTTPAuthenticator implements Authenticator against the REST API.
type HTTPAuthenticator struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time
}

// NewHTTPAuthenticator creates an authenticator for the API at baseURL.
// A nil httpClient uses a client with a 15s timeout.
func NewHTTPAuthenticator(baseURL string, httpClient *http.Client, logger *slog.Logger) *HTTPAuthenticator {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPAuthenticator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger.With("component", "auth_client"),
		now:        time.Now,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type identityPayload struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	IsAdmin bool      `json:"isAdmin"`
}

type authPayload struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int64           `json:"expiresIn"`
	User         identityPayload `json:"user"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// SignIn calls POST /auth/login.
func (a *HTTPAuthenticator) SignIn(ctx context.Context, email, password string) (Credentials, error) {
	var out authPayload
	err := a.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusUnauthorized {
			return Credentials{}, ErrInvalidCredentials
		}
		return Credentials{}, fmt.Errorf("client.SignIn: %w", err)
	}

	return Credentials{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresAt:    a.now().Add(time.Duration(out.ExpiresIn) * time.Second),
		Identity:     Identity{UserID: out.User.ID, Email: out.User.Email},
	}, nil
}

// ResolveRole calls GET /me, which re-reads the role on the server.
func (a *HTTPAuthenticator) ResolveRole(ctx context.Context, creds Credentials) (bool, error) {
	var out identityPayload
	if err := a.do(ctx, http.MethodGet, "/me", creds.AccessToken, nil, &out); err != nil {
		return false, fmt.Errorf("client.ResolveRole: %w", err)
	}
	return out.IsAdmin, nil
}

// SignOut calls POST /auth/logout.
func (a *HTTPAuthenticator) SignOut(ctx context.Context, creds Credentials) error {
	if err := a.do(ctx, http.MethodPost, "/auth/logout", creds.AccessToken, logoutRequest{RefreshToken: creds.RefreshToken}, nil); err != nil {
		return fmt.Errorf("client.SignOut: %w", err)
	}
	return nil
}

func (a *HTTPAuthenticator) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ep errorPayload
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&ep)
		a.log.DebugContext(ctx, "request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return &StatusError{Status: resp.StatusCode, Message: ep.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
