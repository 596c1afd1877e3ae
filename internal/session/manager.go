package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// Backend is the slice of the remote API the session layer needs.
type Backend interface {
	Me(ctx context.Context, token string) (*owner.UserProfile, error)
	Logout(ctx context.Context, token string) error
}

// Manager is the single source of truth for who is logged in. Backend
// validation is lazy and memoized: at most one who-am-I round trip per
// session lifetime, unless a new token is stored.
type Manager struct {
	// mu is held across the whole validation round trip, not just around
	// the memo flag, so two near-simultaneous callers still produce a
	// single backend request.
	mu        sync.Mutex
	store     Store
	backend   Backend
	timeout   time.Duration
	user      *owner.UserProfile
	validated bool

	// revoked fires when the backend rejects the stored token and the
	// session is cleared. Intentional logouts do not fire it.
	revoked func(ownerID string)
}

func NewManager(store Store, backend Backend, timeout time.Duration) *Manager {
	m := &Manager{store: store, backend: backend, timeout: timeout}
	// Warm the in-memory profile from the store; still unverified until
	// the first Validate succeeds.
	if profile, ok := store.Profile(); ok {
		profile.Verified = false
		m.user = profile
	}
	return m
}

// Login decodes the token locally and, when the required claims are present,
// persists it and caches the decoded profile. The profile is optimistic and
// unverified: Validate must still confirm it with the backend. A token
// missing full_name or email is rejected without touching session state.
func (m *Manager) Login(token string) (*owner.UserProfile, error) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentialToken, err)
	}
	if claims.FullName == "" || claims.Email == "" {
		return nil, ErrInvalidCredentialToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetToken(token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	profile := claims.Profile()
	if err := m.store.SetProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}
	m.user = profile
	m.validated = false
	return profile, nil
}

// Validate returns the current user, confirming the stored token with the
// backend on the first call. Any failure clears the session: a token the
// backend will not vouch for is no token at all.
func (m *Manager) Validate(ctx context.Context) (*owner.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.validated && m.user != nil {
		return m.user, nil
	}

	token, ok := m.store.Token()
	if !ok {
		m.user = nil
		return nil, ErrNoSession
	}

	profile, err := m.whoAmI(ctx, token)
	if err != nil {
		m.revokeLocked()
		return nil, fmt.Errorf("%w: %v", ErrExpiredOrInvalidToken, err)
	}

	profile.Verified = true
	if err := m.store.SetProfile(profile); err != nil {
		log.Printf("session: failed to cache profile: %v", err)
	}
	m.user = profile
	m.validated = true
	return profile, nil
}

// FetchUser refreshes the profile unconditionally, regardless of the memo
// flag. Used after mutations that change profile fields (balance, contact
// details). Failure clears the session like Validate does, but the caller
// decides what to do about it.
func (m *Manager) FetchUser(ctx context.Context) (*owner.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.store.Token()
	if !ok {
		m.user = nil
		return nil, ErrNoSession
	}

	profile, err := m.whoAmI(ctx, token)
	if err != nil {
		m.revokeLocked()
		return nil, fmt.Errorf("%w: %v", ErrExpiredOrInvalidToken, err)
	}

	profile.Verified = true
	if err := m.store.SetProfile(profile); err != nil {
		log.Printf("session: failed to cache profile: %v", err)
	}
	m.user = profile
	m.validated = true
	return profile, nil
}

// Logout notifies the backend on a best-effort basis and unconditionally
// clears local state. Safe to call with a dead backend.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token, ok := m.store.Token(); ok {
		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		if err := m.backend.Logout(callCtx, token); err != nil {
			log.Printf("session: logout notify failed: %v", err)
		}
		cancel()
	}
	m.clearLocked()
}

// Current returns the in-memory user without any network round trip. The
// profile may be unverified; check Verified before trusting balance or role
// fields.
func (m *Manager) Current() (*owner.UserProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, false
	}
	return m.user, true
}

// Token exposes the stored bearer token for request forwarding.
func (m *Manager) Token() (string, bool) {
	return m.store.Token()
}

// OnRevoked registers the revocation callback. Set once during wiring,
// before the manager starts serving requests.
func (m *Manager) OnRevoked(fn func(ownerID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked = fn
}

// Expire drops the in-memory profile and the validation memo without
// touching the store, forcing the next Validate to re-confirm with the
// backend. Used when another replica reports the session revoked.
func (m *Manager) Expire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.validated = false
}

func (m *Manager) whoAmI(ctx context.Context, token string) (*owner.UserProfile, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.backend.Me(callCtx, token)
}

// revokeLocked clears the session after a backend rejection and notifies
// the revocation callback off the lock.
func (m *Manager) revokeLocked() {
	var ownerID string
	if m.user != nil {
		ownerID = m.user.UserID
	}
	m.clearLocked()
	if m.revoked != nil && ownerID != "" {
		go m.revoked(ownerID)
	}
}

func (m *Manager) clearLocked() {
	if err := m.store.Clear(); err != nil {
		log.Printf("session: failed to clear store: %v", err)
	}
	m.user = nil
	m.validated = false
}
