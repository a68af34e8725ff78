package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// User is the profile record issued by the auth service. The server is
// authoritative for every field; the client never merges locally.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  string `json:"created_at"`
}

// TokenPair is the credential pair issued on login and registration.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IsZero reports whether the pair is absent.
func (p TokenPair) IsZero() bool { return p.Access == "" && p.Refresh == "" }

// authResponse is the success payload of login and register.
type authResponse struct {
	Message string    `json:"message"`
	User    *User     `json:"user"`
	Tokens  TokenPair `json:"tokens"`
}

// Login exchanges credentials for a user record and a token pair.
func (h *HTTP) Login(ctx context.Context, username, password string) (*User, TokenPair, error) {
	body := map[string]string{"username": username, "password": password}
	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.Login, "", body)
	if err != nil {
		return nil, TokenPair{}, transportErr("login", err)
	}
	resp, err := h.do(req, "login")
	if err != nil {
		return nil, TokenPair{}, err
	}
	defer resp.Body.Close()
	return decodeAuthResponse(resp, "login")
}

// Register creates the account and authenticates in one step. On a 400 the
// returned APIError carries the field-keyed validation payload verbatim.
func (h *HTTP) Register(ctx context.Context, fields map[string]string) (*User, TokenPair, error) {
	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.Register, "", fields)
	if err != nil {
		return nil, TokenPair{}, transportErr("register", err)
	}
	resp, err := h.do(req, "register")
	if err != nil {
		return nil, TokenPair{}, err
	}
	defer resp.Body.Close()
	return decodeAuthResponse(resp, "register")
}

// FetchProfile loads the current user record with the given access token.
func (h *HTTP) FetchProfile(ctx context.Context, accessToken string) (*User, error) {
	req, err := h.newRequest(ctx, http.MethodGet, h.endpoints.Profile, accessToken, nil)
	if err != nil {
		return nil, transportErr("profile", err)
	}
	resp, err := h.do(req, "profile")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp, "profile")
	}
	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &APIError{Kind: KindDecode, StatusCode: resp.StatusCode, Op: "profile", Err: err}
	}
	return &user, nil
}

// UpdateProfile sends a partial update and returns the server's new record.
func (h *HTTP) UpdateProfile(ctx context.Context, accessToken string, fields map[string]string) (*User, error) {
	req, err := h.newRequest(ctx, http.MethodPut, h.endpoints.UpdateProfile, accessToken, fields)
	if err != nil {
		return nil, transportErr("update profile", err)
	}
	resp, err := h.do(req, "update profile")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp, "update profile")
	}
	var out struct {
		Message string `json:"message"`
		User    *User  `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.User == nil {
		return nil, &APIError{Kind: KindDecode, StatusCode: resp.StatusCode, Op: "update profile", Err: err}
	}
	return out.User, nil
}

// ChangePassword replaces the account password.
func (h *HTTP) ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password":         oldPassword,
		"new_password":         newPassword,
		"new_password_confirm": newPassword,
	}
	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.ChangePassword, accessToken, body)
	if err != nil {
		return transportErr("change password", err)
	}
	resp, err := h.do(req, "change password")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp, "change password")
	}
	return nil
}

// Logout asks the server to blacklist the refresh token. The response body
// is ignored; only transport-level failures are reported so the caller can
// log them.
func (h *HTTP) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.Logout, "", body)
	if err != nil {
		return transportErr("logout", err)
	}
	resp, err := h.do(req, "logout")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	return nil
}

// decodeAuthResponse handles the shared success/failure shape of login and
// register.
func decodeAuthResponse(resp *http.Response, op string) (*User, TokenPair, error) {
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, TokenPair{}, errorFromResponse(resp, op)
	}
	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, TokenPair{}, &APIError{Kind: KindDecode, StatusCode: resp.StatusCode, Op: op, Err: err}
	}
	if out.User == nil || out.Tokens.Access == "" || out.Tokens.Refresh == "" {
		return nil, TokenPair{}, &APIError{Kind: KindDecode, StatusCode: resp.StatusCode, Op: op}
	}
	return out.User, out.Tokens, nil
}

// errorFromResponse maps a non-2xx response onto an APIError. The payload's
// "message" (or "error") key becomes the user-facing message; every other
// key is kept verbatim as field-level validation errors.
func errorFromResponse(resp *http.Response, op string) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Op: op}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		apiErr.Kind = KindUnauthorized
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		apiErr.Kind = KindValidation
	default:
		apiErr.Kind = KindTransport
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return apiErr
	}
	fields := make(map[string][]string)
	for key, raw := range payload {
		if key == "message" || key == "error" || key == "detail" {
			var msg string
			if json.Unmarshal(raw, &msg) == nil && msg != "" {
				apiErr.Message = msg
			}
			continue
		}
		var list []string
		if json.Unmarshal(raw, &list) == nil {
			fields[key] = list
			continue
		}
		var single string
		if json.Unmarshal(raw, &single) == nil {
			fields[key] = []string{single}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
