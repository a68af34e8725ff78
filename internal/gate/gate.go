// Package gate decides, for a requested destination and the current
// session snapshot, whether to render or where to redirect. Decide is a
// pure total function: every (status, requirement) pair maps to exactly
// one outcome, and nothing here performs I/O, so the decision table is
// unit-testable without any rendering layer.
package gate

import (
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/session"
)

// Role is the closed set of user roles known to the booking platform.
type Role int

const (
	RoleMember Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "member"
}

// ParseRole maps a wire role value onto the enumeration. The booking
// backend sends "user" for the member role; unknown values also collapse
// to member, which preserves least privilege because admin must match
// exactly.
func ParseRole(s string) Role {
	if s == "admin" {
		return RoleAdmin
	}
	return RoleMember
}

// Access is a destination's authentication requirement.
type Access int

const (
	// AccessPublic destinations render for everyone.
	AccessPublic Access = iota
	// AccessAnonymousOnly destinations (the auth forms) render only while
	// unauthenticated; an authenticated user is sent home.
	AccessAnonymousOnly
	// AccessAuthenticated destinations require a user, and optionally a
	// role.
	AccessAuthenticated
)

// Requirement tags a destination with its admission rules.
type Requirement struct {
	Access       Access
	Role         Role
	RoleRequired bool
}

// Destination is a named, addressable view of the application.
type Destination struct {
	Name        string
	Requirement Requirement
}

// Destination names of the booking application.
const (
	DestHome          = "home"
	DestFields        = "fields"
	DestFieldDetail   = "field-detail"
	DestBookings      = "bookings"
	DestBookingDetail = "booking-detail"
	DestProfile       = "profile"
	DestChat          = "chat"
	DestAdmin         = "admin"
	DestLogin         = "login"
	DestRegister      = "register"
)

var destinations = []Destination{
	{DestHome, Requirement{Access: AccessAuthenticated}},
	// The field catalogue is browsable without an account; booking requires one.
	{DestFields, Requirement{Access: AccessPublic}},
	{DestFieldDetail, Requirement{Access: AccessPublic}},
	{DestBookings, Requirement{Access: AccessAuthenticated}},
	{DestBookingDetail, Requirement{Access: AccessAuthenticated}},
	{DestProfile, Requirement{Access: AccessAuthenticated}},
	{DestChat, Requirement{Access: AccessAuthenticated}},
	{DestAdmin, Requirement{Access: AccessAuthenticated, Role: RoleAdmin, RoleRequired: true}},
	{DestLogin, Requirement{Access: AccessAnonymousOnly}},
	{DestRegister, Requirement{Access: AccessAnonymousOnly}},
}

var byName = func() map[string]Destination {
	m := make(map[string]Destination, len(destinations))
	for _, d := range destinations {
		m[d.Name] = d
	}
	return m
}()

// Destinations returns the registry in declaration order.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Outcome is the result class of a gate decision.
type Outcome int

const (
	// OutcomeLoading means rendering is suspended until initialization
	// completes; a neutral loading state is shown.
	OutcomeLoading Outcome = iota
	// OutcomeRender admits the requested destination.
	OutcomeRender
	// OutcomeRedirect refuses the destination and names a target instead.
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRender:
		return "render"
	default:
		return "redirect"
	}
}

// Decision is the gate's verdict. Target is set only for redirects.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Decide evaluates the admission rules for the named destination against
// the session snapshot:
//
//  1. while initializing, everything is loading
//  2. auth required without a user redirects to login
//  3. auth forms with a user present redirect home
//  4. a role mismatch redirects home, not login: the user is
//     authenticated, just unauthorized
//  5. otherwise the destination renders
//  6. unknown destinations redirect home
func Decide(snap session.Snapshot, name string) Decision {
	if snap.Status == session.StatusInitializing {
		return Decision{Outcome: OutcomeLoading}
	}

	dest, ok := byName[name]
	if !ok {
		return Decision{Outcome: OutcomeRedirect, Target: DestHome}
	}

	req := dest.Requirement
	switch req.Access {
	case AccessAnonymousOnly:
		if snap.Authenticated() {
			return Decision{Outcome: OutcomeRedirect, Target: DestHome}
		}
	case AccessAuthenticated:
		if !snap.Authenticated() {
			return Decision{Outcome: OutcomeRedirect, Target: DestLogin}
		}
		if req.RoleRequired && ParseRole(snap.User.Role) != req.Role {
			return Decision{Outcome: OutcomeRedirect, Target: DestHome}
		}
	}
	return Decision{Outcome: OutcomeRender}
}
