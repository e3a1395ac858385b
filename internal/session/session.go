// Package session owns the client's credential and derived identity.
//
// The backend has no "who am I" endpoint, so identity is reconstructed at
// login time from the decoded credential plus the email the user typed.
// The decode is deliberately unverified: the client cannot check the
// signature and does not try, because nothing here is an authorization
// boundary. IsAdmin gates navigation and UI only; the server enforces the
// rest.
package session

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/errors"
	"github.com/travelapp/travelplanner-client/internal/store"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
)

// AuthAPI is the slice of the remote client the session layer needs. It is
// attached after construction because the API client in turn uses the
// manager as its token source.
type AuthAPI interface {
	Register(ctx context.Context, req travelapi.RegisterRequest) (*travelapi.UserRecord, error)
	Login(ctx context.Context, req travelapi.LoginRequest) (*travelapi.AuthResponse, error)
}

// Manager holds the current credential and identity, persisted across
// restarts. Login, logout, and registration are user-serialized actions,
// but page handlers read concurrently, so access is guarded.
type Manager struct {
	mu       sync.RWMutex
	token    string
	identity *domain.Identity

	store  *store.Store
	api    AuthAPI
	logger *slog.Logger
}

// NewManager creates a manager and reads any persisted session once. A
// malformed persisted identity is treated as absent: the user starts signed
// out instead of the process failing.
func NewManager(st *store.Store, logger *slog.Logger) *Manager {
	m := &Manager{store: st, logger: logger}

	token, err := st.GetString(store.KeyToken)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Warn("could not read persisted credential", "error", err)
		}
		return m
	}

	var identity domain.Identity
	if err := st.GetJSON(store.KeyIdentity, &identity); err != nil {
		logger.Warn("persisted identity unreadable, starting signed out", "error", err)
		return m
	}

	m.token = token
	m.identity = &identity
	logger.Info("session restored", "user_id", identity.ID, "role", identity.Role)
	return m
}

// SetAuthAPI attaches the remote auth client.
func (m *Manager) SetAuthAPI(api AuthAPI) {
	m.api = api
}

// Token implements travelapi.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Identity returns a copy of the current identity, or false when signed out.
func (m *Manager) Identity() (domain.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return domain.Identity{}, false
	}
	return *m.identity, true
}

// IsAuthenticated reports whether a credential is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// IsAdmin reports whether the current identity claims the admin role.
// Advisory only.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil && m.identity.IsAdmin()
}

// Login authenticates against the remote API, decodes the returned
// credential's claims without verifying its signature, and persists the
// resulting session. The display name stays empty: the credential does not
// carry one, and only registration sets it.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	auth, err := m.api.Login(ctx, travelapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	identity, err := identityFromToken(auth.Token, email)
	if err != nil {
		return err
	}

	if err := m.store.SetString(store.KeyToken, auth.Token); err != nil {
		return errors.Wrap(errors.CodeInternal, "persist credential", err)
	}
	if err := m.store.SetJSON(store.KeyIdentity, identity); err != nil {
		return errors.Wrap(errors.CodeInternal, "persist identity", err)
	}

	m.mu.Lock()
	m.token = auth.Token
	m.identity = identity
	m.mu.Unlock()

	m.logger.Info("signed in", "user_id", identity.ID, "role", identity.Role)
	return nil
}

// Register creates the account, logs in with the same credentials, then
// patches the persisted identity with the registration-supplied name. A
// failed intermediate login fails the registration as a whole.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	if _, err := m.api.Register(ctx, travelapi.RegisterRequest{Name: name, Email: email, Password: password}); err != nil {
		return err
	}

	if err := m.Login(ctx, email, password); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity != nil {
		m.identity.Name = name
		if err := m.store.SetJSON(store.KeyIdentity, m.identity); err != nil {
			return errors.Wrap(errors.CodeInternal, "persist identity", err)
		}
	}
	return nil
}

// Logout clears the persisted credential and identity. No server call.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(store.KeyToken); err != nil {
		return errors.Wrap(errors.CodeInternal, "clear credential", err)
	}
	if err := m.store.Delete(store.KeyIdentity); err != nil {
		return errors.Wrap(errors.CodeInternal, "clear identity", err)
	}

	m.token = ""
	m.identity = nil
	m.logger.Info("signed out")
	return nil
}

// identityFromToken decodes the JWT payload without signature verification
// and combines it with the login email. Expected claims: sub (user id as a
// numeric string) and role (USER or ADMIN).
func identityFromToken(tokenStr, email string) (*domain.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnauthorized, "decode credential", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Unauthorized("credential carries no claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.Unauthorized("credential carries no subject")
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnauthorized, "credential subject is not a user id", err)
	}

	role, _ := claims["role"].(string)

	return &domain.Identity{
		ID:    id,
		Name:  "",
		Email: email,
		Role:  domain.Role(role),
	}, nil
}
