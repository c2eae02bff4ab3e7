package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arenapay/walletflow/internal/types"
)

// Session is the authenticated user's credential plus the attributes the
// wallet layer needs. It is a value handed to the client at construction;
// signing out replaces it with none rather than mutating it in place.
type Session struct {
	Token    string // Bearer credential for the wallet API
	UserID   string
	Username string
}

// Expired reports whether the bearer token carries an exp claim that has
// already passed. The claim is read without signature verification; the
// server remains the authority, this only saves a doomed round-trip.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.Token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		// Opaque tokens are passed through untouched
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Provider hands out the current session and owns the sign-out transition.
// Sign-out is "replace the session with none"; every in-flight flow then
// fails its next credential lookup instead of each one handling 401 itself.
type Provider struct {
	mu        sync.RWMutex
	current   *Session
	onSignOut []func()
}

// NewProvider creates a provider holding the given session
func NewProvider(s *Session) *Provider {
	return &Provider{current: s}
}

// Current returns the active session, or an auth error if signed out or
// the token has expired
func (p *Provider) Current() (*Session, error) {
	p.mu.RLock()
	s := p.current
	p.mu.RUnlock()

	if s == nil {
		return nil, types.NewWalletError(types.ErrSignedOut, "no active session")
	}
	if s.Expired(time.Now()) {
		return nil, types.NewWalletError(types.ErrSessionExpired, "session token has expired")
	}
	return s, nil
}

// Replace installs a new session, e.g. after a token refresh
func (p *Provider) Replace(s *Session) {
	p.mu.Lock()
	p.current = s
	p.mu.Unlock()
}

// SignOut discards the session and notifies subscribers. Safe to call more
// than once; subscribers fire only on the first transition to signed-out.
func (p *Provider) SignOut() {
	p.mu.Lock()
	wasActive := p.current != nil
	p.current = nil
	subscribers := p.onSignOut
	p.mu.Unlock()

	if !wasActive {
		return
	}
	for _, fn := range subscribers {
		fn()
	}
}

// OnSignOut registers a callback invoked when the session is discarded
func (p *Provider) OnSignOut(fn func()) {
	p.mu.Lock()
	p.onSignOut = append(p.onSignOut, fn)
	p.mu.Unlock()
}
