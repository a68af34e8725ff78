// Package keychain owns the durable credential pair for the datsan client.
// Tokens are stored in the OS keychain (macOS Keychain, Windows Credential
// Manager, Secret Service) with an encrypted file fallback under the XDG
// state dir for headless Linux hosts.
//
// The pair invariant (access and refresh token are both present or both
// absent) is enforced on read: a half-present pair is deleted and reported
// as absent, so a crash between the two writes can never leave the client
// with an authenticated-looking credential it cannot refresh.
package keychain

import (
	"errors"
	"sync"

	"github.com/99designs/keyring"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/xdg"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "datsan"

// Keys used for the credential pair in the OS keychain.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// ErrNoCredentials is returned by LoadTokenPair when no (complete) pair is
// stored.
var ErrNoCredentials = errors.New("no stored credentials")

// Manager provides thread-safe access to the credential pair.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the OS keyring and returns a manager bound to it.
func NewManager() (*Manager, error) {
	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.FileBackend,
		},
		FileDir:          stateDir,
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	})
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an existing keyring. Used by tests with
// keyring.NewArrayKeyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// SaveTokenPair stores both tokens. Access is written first; if the refresh
// write fails the access token is removed again so no half pair survives.
func (m *Manager) SaveTokenPair(accessToken, refreshToken string) error {
	if accessToken == "" || refreshToken == "" {
		return errors.New("refusing to store a partial token pair")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Set(keyring.Item{Key: KeyAccessToken, Data: []byte(accessToken)}); err != nil {
		return err
	}
	if err := m.ring.Set(keyring.Item{Key: KeyRefreshToken, Data: []byte(refreshToken)}); err != nil {
		_ = m.ring.Remove(KeyAccessToken)
		return err
	}
	return nil
}

// LoadTokenPair returns the stored pair. A missing or half-present pair
// yields ErrNoCredentials; the half pair is cleared as a side effect.
func (m *Manager) LoadTokenPair() (accessToken, refreshToken string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	access, accessErr := m.ring.Get(KeyAccessToken)
	refresh, refreshErr := m.ring.Get(KeyRefreshToken)

	accessOK := accessErr == nil && len(access.Data) > 0
	refreshOK := refreshErr == nil && len(refresh.Data) > 0

	if accessOK && refreshOK {
		return string(access.Data), string(refresh.Data), nil
	}
	if accessOK || refreshOK {
		// Half pair, e.g. a crash between the two writes. Treat as absent.
		_ = m.ring.Remove(KeyAccessToken)
		_ = m.ring.Remove(KeyRefreshToken)
	}
	return "", "", ErrNoCredentials
}

// AccessToken returns just the access token when a complete pair is stored,
// or "" when the client should send requests unauthenticated. Intended for
// the outbound-request layer; it never errors.
func (m *Manager) AccessToken() string {
	access, _, err := m.LoadTokenPair()
	if err != nil {
		return ""
	}
	return access
}

// ClearTokens removes both credentials. Missing keys are not an error.
func (m *Manager) ClearTokens() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errA := m.ring.Remove(KeyAccessToken)
	errR := m.ring.Remove(KeyRefreshToken)
	if errA != nil && !errors.Is(errA, keyring.ErrKeyNotFound) {
		return errA
	}
	if errR != nil && !errors.Is(errR, keyring.ErrKeyNotFound) {
		return errR
	}
	return nil
}
