package session

import (
	"context"
	"sync"
	"time"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/backend"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/keychain"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/logging"
)

// logoutNotifyTimeout bounds the detached best-effort logout call; it must
// not inherit the caller's context, which is usually gone by the time the
// request completes.
const logoutNotifyTimeout = 5 * time.Second

// Manager owns the session. All credential-mutating operations go through
// it; nothing else writes tokens to durable storage.
type Manager struct {
	api      backend.API
	store    *keychain.Manager
	notifier Notifier

	// opMu serializes credential-mutating operations so a logout cannot
	// interleave with an in-flight update and resurrect a cleared session.
	opMu sync.Mutex
	// stateMu guards status and user for lock-free-feeling snapshot reads.
	stateMu sync.RWMutex
	status  Status
	user    *backend.User

	initOnce sync.Once

	// detached tracks fire-and-forget goroutines; tests wait on it.
	detached sync.WaitGroup
}

// NewManager constructs a session in the initializing state.
func NewManager(api backend.API, store *keychain.Manager, notifier Notifier) *Manager {
	return &Manager{
		api:      api,
		store:    store,
		notifier: notifier,
		status:   StatusInitializing,
	}
}

// Snapshot returns the current read-only view of the session.
func (m *Manager) Snapshot() Snapshot {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	snap := Snapshot{Status: m.status}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// AccessToken exposes the stored access token to the outbound-request
// layer. An empty string means "send the request unauthenticated".
func (m *Manager) AccessToken() string {
	return m.store.AccessToken()
}

func (m *Manager) setState(status Status, user *backend.User) {
	m.stateMu.Lock()
	m.status = status
	m.user = user
	m.stateMu.Unlock()
}

func (m *Manager) notify(ev Event) {
	if m.notifier != nil {
		m.notifier.Success(ev)
	}
}

// Initialize rehydrates the session from durable storage. It runs exactly
// once per process; later calls return the current snapshot immediately.
//
// With no stored pair the session becomes unauthenticated without any
// network call. With a stored pair, the profile is fetched with the access
// token; any failure (transport, 401, malformed body) discards both
// stored credentials and yields unauthenticated. Re-login is the recovery
// path; there is no silent token refresh.
func (m *Manager) Initialize(ctx context.Context) Snapshot {
	m.initOnce.Do(func() {
		m.opMu.Lock()
		defer m.opMu.Unlock()

		access, _, err := m.store.LoadTokenPair()
		if err != nil {
			m.setState(StatusUnauthenticated, nil)
			return
		}
		user, err := m.api.FetchProfile(ctx, access)
		if err != nil {
			logging.Debugf("session init: %v", err)
			_ = m.store.ClearTokens()
			m.setState(StatusUnauthenticated, nil)
			return
		}
		m.setState(StatusAuthenticated, user)
	})
	return m.Snapshot()
}

// Login exchanges credentials for a session. On success the token pair is
// persisted, the user is set, and a success notification is emitted. On
// any failure the session is left untouched and the returned error carries
// the server's message (see backend.AsAPIError).
func (m *Manager) Login(ctx context.Context, username, password string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	user, tokens, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := m.store.SaveTokenPair(tokens.Access, tokens.Refresh); err != nil {
		return err
	}
	m.setState(StatusAuthenticated, user)
	m.notify(EventLoggedIn)
	return nil
}

// Register creates the account and immediately authenticates the session,
// with the same persistence and state transition as Login. On validation
// failure the error carries the server's field-keyed payload verbatim and
// no state changes.
func (m *Manager) Register(ctx context.Context, fields map[string]string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	user, tokens, err := m.api.Register(ctx, fields)
	if err != nil {
		return err
	}
	if err := m.store.SaveTokenPair(tokens.Access, tokens.Refresh); err != nil {
		return err
	}
	m.setState(StatusAuthenticated, user)
	m.notify(EventRegistered)
	return nil
}

// Logout terminates the session. The server is notified with the refresh
// token in a detached goroutine whose failure is logged but never awaited;
// locally, both durable credentials and the user are cleared
// unconditionally. Logout cannot fail from the caller's point of view.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if _, refresh, err := m.store.LoadTokenPair(); err == nil && refresh != "" {
		m.detached.Add(1)
		go func() {
			defer m.detached.Done()
			nctx, cancel := context.WithTimeout(context.Background(), logoutNotifyTimeout)
			defer cancel()
			if err := m.api.Logout(nctx, refresh); err != nil {
				logging.Debugf("logout notify: %v", err)
			}
		}()
	}

	_ = m.store.ClearTokens()
	m.setState(StatusUnauthenticated, nil)
	m.notify(EventLoggedOut)
}

// UpdateProfile sends a partial update. On success the user record is
// replaced with the server's response; the server is authoritative, there
// is no local merge. On failure the user is left unchanged and the error
// carries the server's payload.
func (m *Manager) UpdateProfile(ctx context.Context, fields map[string]string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	user, err := m.api.UpdateProfile(ctx, m.store.AccessToken(), fields)
	if err != nil {
		return err
	}
	m.stateMu.Lock()
	m.user = user
	m.stateMu.Unlock()
	m.notify(EventProfileUpdated)
	return nil
}

// ChangePassword replaces the account password. Credentials and session
// state are untouched either way.
func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.api.ChangePassword(ctx, m.store.AccessToken(), oldPassword, newPassword); err != nil {
		return err
	}
	m.notify(EventPasswordChanged)
	return nil
}
