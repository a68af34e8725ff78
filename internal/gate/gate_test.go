package gate

import (
	"testing"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/backend"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/session"
)

func anon() session.Snapshot {
	return session.Snapshot{Status: session.StatusUnauthenticated}
}

func member() session.Snapshot {
	return session.Snapshot{
		Status: session.StatusAuthenticated,
		User:   &backend.User{ID: 1, Username: "alice", Role: "member"},
	}
}

func admin() session.Snapshot {
	return session.Snapshot{
		Status: session.StatusAuthenticated,
		User:   &backend.User{ID: 9, Username: "root", Role: "admin"},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		dest string
		want Decision
	}{
		{
			name: "initializing suspends everything",
			snap: session.Snapshot{Status: session.StatusInitializing},
			dest: DestHome,
			want: Decision{Outcome: OutcomeLoading},
		},
		{
			name: "initializing suspends even unknown destinations",
			snap: session.Snapshot{Status: session.StatusInitializing},
			dest: "no-such-view",
			want: Decision{Outcome: OutcomeLoading},
		},
		{
			name: "anonymous user on login form renders",
			snap: anon(),
			dest: DestLogin,
			want: Decision{Outcome: OutcomeRender},
		},
		{
			name: "anonymous user on register form renders",
			snap: anon(),
			dest: DestRegister,
			want: Decision{Outcome: OutcomeRender},
		},
		{
			name: "anonymous user on public view renders",
			snap: anon(),
			dest: DestFields,
			want: Decision{Outcome: OutcomeRender},
		},
		{
			name: "authenticated user on public view renders",
			snap: admin(),
			dest: DestFieldDetail,
			want: Decision{Outcome: OutcomeRender},
		},
		{
			name: "anonymous user on protected view redirects to login",
			snap: anon(),
			dest: DestBookings,
			want: Decision{Outcome: OutcomeRedirect, Target: DestLogin},
		},
		{
			name: "anonymous user on admin view redirects to login",
			snap: anon(),
			dest: DestAdmin,
			want: Decision{Outcome: OutcomeRedirect, Target: DestLogin},
		},
		{
			name: "member on protected view renders",
			snap: member(),
			dest: DestProfile,
			want: Decision{Outcome: OutcomeRender},
		},
		{
			name: "member on admin view redirects home not login",
			snap: member(),
			dest: DestAdmin,
			want: Decision{Outcome: OutcomeRedirect, Target: DestHome},
		},
		{
			name: "admin on admin view renders",
			snap: admin(),
			dest: DestAdmin,
			want: Decision{Outcome: OutcomeRender},
		},
		{
			name: "authenticated user cannot view login form",
			snap: member(),
			dest: DestLogin,
			want: Decision{Outcome: OutcomeRedirect, Target: DestHome},
		},
		{
			name: "authenticated user cannot view register form",
			snap: admin(),
			dest: DestRegister,
			want: Decision{Outcome: OutcomeRedirect, Target: DestHome},
		},
		{
			name: "unknown destination redirects home",
			snap: member(),
			dest: "no-such-view",
			want: Decision{Outcome: OutcomeRedirect, Target: DestHome},
		},
		{
			name: "unknown destination redirects home even when anonymous",
			snap: anon(),
			dest: "no-such-view",
			want: Decision{Outcome: OutcomeRedirect, Target: DestHome},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.snap, tt.dest)
			if got != tt.want {
				t.Errorf("Decide(%s, %q) = %+v, want %+v", tt.snap.Status, tt.dest, got, tt.want)
			}
		})
	}
}

func TestDecideIsTotalOverRegistry(t *testing.T) {
	snaps := []session.Snapshot{
		{Status: session.StatusInitializing},
		anon(),
		member(),
		admin(),
	}
	for _, snap := range snaps {
		for _, dest := range Destinations() {
			got := Decide(snap, dest.Name)
			switch got.Outcome {
			case OutcomeLoading, OutcomeRender:
				if got.Target != "" {
					t.Errorf("Decide(%s, %s): target %q on non-redirect", snap.Status, dest.Name, got.Target)
				}
			case OutcomeRedirect:
				if got.Target != DestHome && got.Target != DestLogin {
					t.Errorf("Decide(%s, %s): unexpected redirect target %q", snap.Status, dest.Name, got.Target)
				}
			default:
				t.Errorf("Decide(%s, %s): unknown outcome %v", snap.Status, dest.Name, got.Outcome)
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"member", RoleMember},
		{"user", RoleMember}, // wire value of the booking backend
		{"", RoleMember},
		{"superuser", RoleMember},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
