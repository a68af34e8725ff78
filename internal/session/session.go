// Package session is the single source of truth for the client's identity.
// It owns the in-memory session state and the durable credential pair, and
// mediates every credential exchange with the auth service.
//
// The Manager is an explicit handle constructed once at process start and
// injected into its consumers; there is no ambient global. Mutations are
// serialized by an internal mutex so "last complete operation wins" holds
// even when commands race, while snapshot reads never block on an in-flight
// network call.
package session

import (
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/backend"
)

// Status is the lifecycle state of the session.
type Status int

const (
	// StatusInitializing is the only state in which rendering must be
	// suspended; it exists exactly once per process, before Initialize
	// completes.
	StatusInitializing Status = iota
	// StatusUnauthenticated means no user and no stored credentials.
	StatusUnauthenticated
	// StatusAuthenticated means the user record is populated and the
	// credential pair is persisted.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of the session handed to consumers. The
// User pointer refers to a private copy, so holders cannot mutate the
// store's state through it.
type Snapshot struct {
	Status Status
	User   *backend.User
}

// Authenticated reports whether a user is present.
func (s Snapshot) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// Event identifies a user-facing success notification emitted by the
// store. Presentation (wording, locale, medium) is the notifier's concern.
type Event int

const (
	EventLoggedIn Event = iota
	EventRegistered
	EventLoggedOut
	EventProfileUpdated
	EventPasswordChanged
)

// Notifier receives non-blocking success notifications. Implementations
// must not call back into the Manager.
type Notifier interface {
	Success(Event)
}
