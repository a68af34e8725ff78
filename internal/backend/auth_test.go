package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTP {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, DefaultEndpoints(), 2*time.Second)
}

func TestLoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Client-Session"))
		require.Empty(t, r.Header.Get("Authorization"), "login is sent unauthenticated")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"user":    map[string]any{"id": 1, "username": "alice", "role": "member"},
			"tokens":  map[string]string{"access": "A", "refresh": "B"},
		})
	}))

	user, tokens, err := client.Login(context.Background(), "alice", "x")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, TokenPair{Access: "A", Refresh: "B"}, tokens)
}

func TestLoginFailureExtractsServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))

	_, _, err := client.Login(context.Background(), "alice", "wrong")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, KindValidation, apiErr.Kind)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestLoginFailureWithoutMessageFallsBackToGeneric(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`not json`))
	}))

	_, _, err := client.Login(context.Background(), "alice", "wrong")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Empty(t, apiErr.Message, "caller supplies the generic fallback")
	require.Equal(t, "login", apiErr.Op)
}

func TestLoginRejectsIncompleteTokenPair(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user":   map[string]any{"id": 1},
			"tokens": map[string]string{"access": "A"},
		})
	}))

	_, _, err := client.Login(context.Background(), "alice", "x")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, KindDecode, apiErr.Kind)
}

func TestRegisterValidationPayloadVerbatim(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register/", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"username": []string{"A user with that username already exists."},
			"email":    "Enter a valid email address.",
		})
	}))

	_, _, err := client.Register(context.Background(), map[string]string{"username": "alice"})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, KindValidation, apiErr.Kind)
	require.Equal(t, map[string][]string{
		"username": {"A user with that username already exists."},
		"email":    {"Enter a valid email address."},
	}, apiErr.Fields)
}

func TestRegisterAcceptsCreated(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"user":   map[string]any{"id": 2, "username": "bob"},
			"tokens": map[string]string{"access": "A", "refresh": "B"},
		})
	}))

	user, tokens, err := client.Register(context.Background(), map[string]string{"username": "bob"})
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	require.False(t, tokens.IsZero())
}

func TestFetchProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/profile/", r.URL.Path)
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "alice", "full_name": "Alice", "role": "admin", "is_verified": true,
		})
	}))

	user, err := client.FetchProfile(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Role)
	require.True(t, user.IsVerified)
}

func TestFetchProfileUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired"})
	}))

	_, err := client.FetchProfile(context.Background(), "expired")
	require.True(t, IsUnauthorized(err))
	apiErr, _ := AsAPIError(err)
	require.Equal(t, "Token is invalid or expired", apiErr.Message)
}

func TestUpdateProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/auth/profile/update/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]string{"phone": "0901234567"}, body)

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Profile updated successfully",
			"user":    map[string]any{"id": 1, "username": "alice", "phone": "0901234567"},
		})
	}))

	user, err := client.UpdateProfile(context.Background(), "abc", map[string]string{"phone": "0901234567"})
	require.NoError(t, err)
	require.Equal(t, "0901234567", user.Phone)
}

func TestChangePasswordSendsConfirmation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/change-password/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "new", body["new_password"])
		require.Equal(t, "new", body["new_password_confirm"])
		json.NewEncoder(w).Encode(map[string]string{"message": "Password changed successfully"})
	}))

	require.NoError(t, client.ChangePassword(context.Background(), "abc", "old", "new"))
}

func TestLogoutIgnoresResponseBody(t *testing.T) {
	var gotRefresh string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotRefresh = body["refresh_token"]
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid token"}`))
	}))

	// Even a 4xx is not an error: the response is ignored by contract.
	require.NoError(t, client.Logout(context.Background(), "def"))
	require.Equal(t, "def", gotRefresh)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, DefaultEndpoints(), time.Second)
	_, _, err := client.Login(context.Background(), "alice", "x")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, KindTransport, apiErr.Kind)
}
