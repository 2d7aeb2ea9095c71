// Package session implements the admin authentication state machine over a
// persisted store slice. There is a single operator identity; the guard is a
// boolean gate with timestamp-based expiry checked lazily on read.
package session

import (
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thomas/portfolio-cms/internal/config"
	"github.com/thomas/portfolio-cms/internal/store"
)

// SliceName is the persisted slice holding the session state.
const SliceName = "admin-session"

// SliceVersion is the session slice schema version.
const SliceVersion = 1

// User identifies the authenticated operator.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// State is the persisted session state. The zero value is the logged-out
// shape.
type State struct {
	IsAuthenticated bool      `json:"is_authenticated"`
	User            *User     `json:"user,omitempty"`
	LastLoginAt     time.Time `json:"last_login_at,omitzero"`
	ExpiresAt       time.Time `json:"expires_at,omitzero"`
}

// IsValid reports whether the state is authenticated and unexpired at the
// given instant. It is a pure function; expiry has no active timer and is
// only ever observed through reads like this one.
func IsValid(s State, now time.Time) bool {
	return s.IsAuthenticated && !s.ExpiresAt.IsZero() && !now.After(s.ExpiresAt)
}

// Result is the outcome of a login attempt. Failures are values, not panics;
// Err is one of the package sentinels so callers can branch with errors.Is.
type Result struct {
	Success bool
	Err     error
}

// Guard wraps one persisted store slice with login/logout/check/extend
// operations.
type Guard struct {
	store *store.Store[State]
	cfg   *config.AuthConfig
	now   func() time.Time
}

// NewGuard creates a guard over a session slice in dir.
func NewGuard(cfg *config.AuthConfig, dir string) (*Guard, error) {
	st, err := store.Open(store.Options[State]{
		Dir:     dir,
		Name:    SliceName,
		Version: SliceVersion,
		Default: func() State { return State{} },
		Clone: func(s State) State {
			if s.User != nil {
				u := *s.User
				s.User = &u
			}
			return s
		},
	})
	if err != nil {
		return nil, err
	}
	return &Guard{store: st, cfg: cfg, now: time.Now}, nil
}

// State returns the current session state without side effects.
func (g *Guard) State() State {
	return g.store.State()
}

// Login compares the candidate password against the configured secret. On
// match it transitions to the authenticated state and persists; on mismatch
// the state is untouched and nothing is written.
func (g *Guard) Login(password string) Result {
	if !g.cfg.Configured() {
		return Result{Err: ErrNotConfigured}
	}
	if !g.verify(password) {
		return Result{Err: ErrInvalidCredentials}
	}

	now := g.now()
	g.store.Mutate(func(State) State {
		return State{
			IsAuthenticated: true,
			User: &User{
				ID:       "admin",
				Username: "admin",
				Role:     "administrator",
			},
			LastLoginAt: now,
			ExpiresAt:   now.Add(g.cfg.SessionTTL),
		}
	})
	return Result{Success: true}
}

// Logout unconditionally resets to the logged-out shape and persists.
func (g *Guard) Logout() {
	g.store.Mutate(func(State) State { return State{} })
}

// Check reports whether the session is currently valid. An authenticated but
// expired session is logged out as a side effect; repeated calls after that
// keep returning false. This is the only operation that can silently force a
// logout.
func (g *Guard) Check() bool {
	s := g.store.State()
	if IsValid(s, g.now()) {
		return true
	}
	if s.IsAuthenticated {
		g.Logout()
	}
	return false
}

// Extend pushes the expiry to now+TTL for an authenticated session and
// persists. It is a no-op when logged out. Callers invoke it on every
// protected request, so an active operator never expires mid-task.
func (g *Guard) Extend() {
	now := g.now()
	s := g.store.State()
	if !s.IsAuthenticated {
		return
	}
	g.store.Mutate(func(s State) State {
		if !s.IsAuthenticated {
			return s
		}
		s.ExpiresAt = now.Add(g.cfg.SessionTTL)
		return s
	})
}

// verify checks the candidate against either the bcrypt hash or the plain
// secret. The plain comparison is constant-time.
func (g *Guard) verify(password string) bool {
	if g.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.cfg.AdminPassword), []byte(password)) == 1
}
