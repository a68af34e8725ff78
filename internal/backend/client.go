// Package backend implements the REST client for the booking platform's
// authentication service. It is the only place that speaks the wire
// protocol; callers receive decoded records or typed APIErrors.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/logging"
)

// Endpoints contains the URL paths of the auth service. The trailing
// slashes match the Django routing of the booking backend.
type Endpoints struct {
	Login          string
	Register       string
	Profile        string
	UpdateProfile  string
	ChangePassword string
	Logout         string
}

// DefaultEndpoints returns the fixed REST contract of the booking backend.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:          "/auth/login/",
		Register:       "/auth/register/",
		Profile:        "/auth/profile/",
		UpdateProfile:  "/auth/profile/update/",
		ChangePassword: "/auth/change-password/",
		Logout:         "/auth/logout/",
	}
}

// API is the auth service surface consumed by the session layer.
type API interface {
	Login(ctx context.Context, username, password string) (*User, TokenPair, error)
	Register(ctx context.Context, fields map[string]string) (*User, TokenPair, error)
	FetchProfile(ctx context.Context, accessToken string) (*User, error)
	UpdateProfile(ctx context.Context, accessToken string, fields map[string]string) (*User, error)
	ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) error
	Logout(ctx context.Context, refreshToken string) error
}

// HTTP implements API over REST endpoints.
type HTTP struct {
	baseURL   string
	endpoints Endpoints
	client    *http.Client
	// sessionID correlates all requests of one process in server logs.
	sessionID string
}

var _ API = (*HTTP)(nil)

// New creates an HTTP client for the auth service rooted at baseURL.
func New(baseURL string, endpoints Endpoints, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
		sessionID: uuid.NewString(),
	}
}

// newRequest builds a request with the standard headers. An empty
// accessToken means the request is sent unauthenticated.
func (h *HTTP) newRequest(ctx context.Context, method, path, accessToken string, body any) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Session", h.sessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return req, nil
}

func (h *HTTP) do(req *http.Request, op string) (*http.Response, error) {
	logging.Debugf("%s %s (%s)", req.Method, req.URL.Path, op)
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, transportErr(op, err)
	}
	return resp, nil
}
