// Package session owns the single authenticated session of a running
// client: the current identity, the bearer token, and the token's
// persistence across restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/estudiantes/revista/internal/client/api"
	"github.com/estudiantes/revista/internal/client/models"
	"github.com/estudiantes/revista/internal/client/repositories/metadata"
	"github.com/estudiantes/revista/internal/common"
	"github.com/estudiantes/revista/internal/logging"
)

// Manager holds the process's one session. Login, Logout, and Restore are
// serialized by a mutex so a logout can never race a restore into an
// inconsistent token/identity pair; token validation round-trips are
// deduplicated with singleflight so the watcher and a concurrent restore
// share one request.
type Manager struct {
	client api.Client
	tokens metadata.Repository
	log    logging.Logger

	mu       sync.Mutex
	token    string
	identity *models.Identity

	sf singleflight.Group
}

func NewManager(client api.Client, tokens metadata.Repository, log logging.Logger) *Manager {
	return &Manager{client: client, tokens: tokens, log: log.With("component", "session")}
}

// Current returns the cached identity for this session, or nil when the
// session is unauthenticated. The copy may be stale; the identity store owns
// the record.
func (m *Manager) Current() *models.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return nil
	}
	id := *m.identity
	return &id
}

// Restore loads the persisted token, validates it against the identity
// store, and repopulates the session. An absent or stale token is not an
// error: the session simply comes up unauthenticated (nil identity, nil
// error). Collaborator unavailability is propagated so the caller can tell
// "logged out" from "could not check".
func (m *Manager) Restore(ctx context.Context) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := m.tokens.Get(ctx, metadata.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("reading persisted token: %w", err)
	}
	if len(raw) == 0 {
		m.clearLocked()
		return nil, nil
	}

	token := string(raw)
	if tokenExpired(token) {
		m.log.Info(ctx, "persisted token expired, starting unauthenticated")
		return nil, m.eraseLocked(ctx)
	}

	identity, err := m.resolve(ctx, token)
	switch {
	case err == nil:
		m.token = token
		m.identity = &identity
		m.client.SetToken(token)
		return m.currentLocked(), nil
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrAuth):
		// Stale token: degrade to unauthenticated instead of failing.
		m.log.Info(ctx, "persisted token rejected, starting unauthenticated")
		return nil, m.eraseLocked(ctx)
	default:
		m.clearLocked()
		return nil, err
	}
}

// Login authenticates, persists the token, and populates the session.
// On invalid credentials the session stays cleared and nothing is persisted.
func (m *Manager) Login(ctx context.Context, email string, password []byte) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.client.Authenticate(ctx, email, string(password))
	if err != nil {
		m.clearLocked()
		return nil, err
	}

	identity, err := m.resolve(ctx, token)
	if err != nil {
		m.clearLocked()
		return nil, fmt.Errorf("resolving identity: %w", err)
	}

	if err := m.tokens.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
		m.clearLocked()
		return nil, fmt.Errorf("persisting token: %w", err)
	}

	m.token = token
	m.identity = &identity
	m.client.SetToken(token)
	m.log.Info(ctx, "logged in", "email", identity.Email, "role", identity.Role)
	return m.currentLocked(), nil
}

// Logout clears the session and erases the persisted token. It is
// idempotent: logging out of an empty session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eraseLocked(ctx)
}

// Register forwards the profile to the identity store. The session is not
// touched; the user logs in afterwards.
func (m *Manager) Register(ctx context.Context, profile models.Profile) error {
	required := []struct{ field, value string }{
		{"name", profile.Name},
		{"email", profile.Email},
		{"password", profile.Password},
		{"institution", profile.Institution},
		{"study_area", profile.StudyArea},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, r.field)
		}
	}
	return m.client.Register(ctx, profile)
}

// Watch periodically revalidates the session token until ctx is cancelled.
// When the token goes stale the session flips to unauthenticated.
func (m *Manager) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.revalidate(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) revalidate(ctx context.Context) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	if token == "" {
		return
	}

	vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	identity, err := m.resolve(vctx, token)
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token != token {
		// Session changed while we were validating; discard the result.
		return
	}
	switch {
	case err == nil:
		m.identity = &identity
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrAuth):
		m.log.Warn(ctx, "session token no longer valid, logging out")
		if eraseErr := m.eraseLocked(ctx); eraseErr != nil {
			m.log.Error(ctx, "erasing stale token", "err", eraseErr)
		}
	default:
		m.log.Warn(ctx, "session revalidation failed", "err", err)
	}
}

// resolve validates a token by fetching the identity behind it. Concurrent
// calls for the same token share one round-trip. The token travels with the
// request itself; the client's installed token is never touched here, so a
// watcher tick validating an old token cannot race a login's validation of
// a new one.
func (m *Manager) resolve(ctx context.Context, token string) (models.Identity, error) {
	v, err, _ := m.sf.Do(token, func() (any, error) {
		return m.client.CurrentUser(ctx, token)
	})
	if err != nil {
		return models.Identity{}, err
	}
	return v.(models.Identity), nil
}

// currentLocked returns a copy of the cached identity; callers must hold mu.
func (m *Manager) currentLocked() *models.Identity {
	if m.identity == nil {
		return nil
	}
	id := *m.identity
	return &id
}

// clearLocked empties the in-memory session; callers must hold mu.
func (m *Manager) clearLocked() {
	m.token = ""
	m.identity = nil
	m.client.SetToken("")
}

// eraseLocked clears the session and deletes the persisted token; callers
// must hold mu.
func (m *Manager) eraseLocked(ctx context.Context) error {
	m.clearLocked()
	if err := m.tokens.Delete(ctx, metadata.KeyToken); err != nil {
		return fmt.Errorf("erasing persisted token: %w", err)
	}
	return nil
}

// tokenExpired reports whether the bearer token carries an exp claim in the
// past. The signature is not checked here; only the identity store can truly
// validate the token. Unparseable tokens are left for the server to judge.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
