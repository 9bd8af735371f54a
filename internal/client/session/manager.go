package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mediapp/client-go/internal/client/models"
	"github.com/mediapp/client-go/internal/logging"
)

// State of the session machine.
type State int

const (
	// StateUnauthenticated: no token, no profile.
	StateUnauthenticated State = iota
	// StatePendingProfile: a token is held but the profile has not been
	// loaded yet.
	StatePendingProfile
	// StateAuthenticated: token and loaded profile.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StatePendingProfile:
		return "pending-profile"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// authAPI and usersAPI are the slices of the api package the manager
// needs; tests substitute fakes.
type authAPI interface {
	Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error)
}

type usersAPI interface {
	RegisterPatient(ctx context.Context, data models.RegisterPatientData) (int64, error)
	GetProfile(ctx context.Context) (models.User, error)
}

// Options tunes Manager behavior.
type Options struct {
	// EagerProfileFetch selects the historical eager session variant:
	// login and restore immediately fetch the profile, and a failed fetch
	// clears the tokens and signs the session out. The default (deferred)
	// variant treats a held token as sufficient and never clears tokens
	// on a failed profile fetch.
	EagerProfileFetch bool

	Logger logging.Logger
}

// Manager is the session state machine. It owns the relationship between
// the token store and the current user profile; presentation collaborators
// read state from here and never touch tokens directly.
//
// Not safe for concurrent use.
type Manager struct {
	auth   authAPI
	users  usersAPI
	tokens *TokenStore
	log    logging.Logger
	eager  bool

	state State
	user  *models.User
}

func NewManager(auth authAPI, users usersAPI, tokens *TokenStore, opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		auth:   auth,
		users:  users,
		tokens: tokens,
		log:    log,
		eager:  opts.EagerProfileFetch,
	}
}

// Restore derives the initial state from persisted tokens at startup. With
// a persisted access token the session starts in StatePendingProfile (and,
// in the eager variant, immediately attempts a profile fetch); otherwise
// it starts unauthenticated.
func (m *Manager) Restore(ctx context.Context) error {
	tokens, err := m.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if tokens.AccessToken == "" {
		m.state = StateUnauthenticated
		return nil
	}

	m.state = StatePendingProfile
	m.log.Info(ctx, "session restored from storage", "state", m.state.String())

	if m.eager {
		if err := m.FetchUser(ctx); err != nil {
			m.log.Warn(ctx, "profile fetch on restore failed", "error", err)
		}
	}
	return nil
}

// Login authenticates, persists the issued tokens and moves to
// StatePendingProfile. In the eager variant the profile is fetched
// immediately and a fetch failure fails the login. Authentication failures
// are never swallowed.
func (m *Manager) Login(ctx context.Context, credentials models.LoginCredentials) error {
	resp, err := m.auth.Login(ctx, credentials)
	if err != nil {
		return err
	}

	if err := m.tokens.Set(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return err
	}
	m.user = nil
	m.state = StatePendingProfile
	m.log.Info(ctx, "logged in", "state", m.state.String())

	if m.eager {
		if err := m.FetchUser(ctx); err != nil {
			return fmt.Errorf("loading profile after login: %w", err)
		}
	}
	return nil
}

// Register creates a patient account and immediately logs in with the same
// credentials.
func (m *Manager) Register(ctx context.Context, data models.RegisterPatientData) error {
	if _, err := m.users.RegisterPatient(ctx, data); err != nil {
		return err
	}
	return m.Login(ctx, models.LoginCredentials{Email: data.Email, Password: data.Password})
}

// FetchUser loads the current profile and moves to StateAuthenticated.
//
// On failure the two variants diverge: deferred keeps the tokens and stays
// in StatePendingProfile, eager clears the tokens and reverts to
// StateUnauthenticated. Either way the error is returned for the caller to
// report.
func (m *Manager) FetchUser(ctx context.Context) error {
	user, err := m.users.GetProfile(ctx)
	if err != nil {
		m.user = nil
		if m.eager {
			if clearErr := m.tokens.Clear(ctx); clearErr != nil {
				m.log.Error(ctx, "clearing tokens after failed profile fetch", "error", clearErr)
			}
			m.state = StateUnauthenticated
		}
		return err
	}

	m.user = &user
	m.state = StateAuthenticated
	return nil
}

// Logout clears tokens and profile and returns to StateUnauthenticated.
func (m *Manager) Logout(ctx context.Context) error {
	m.user = nil
	m.state = StateUnauthenticated
	if err := m.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	m.log.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether a profile is loaded or an access token
// is held.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	if m.user != nil {
		return true
	}
	tokens, err := m.tokens.Get(ctx)
	if err != nil {
		return false
	}
	return tokens.AccessToken != ""
}

// State returns the current machine state.
func (m *Manager) State() State {
	return m.state
}

// User returns the loaded profile, or false when none is loaded.
func (m *Manager) User() (models.User, bool) {
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// TokenClaims is the subset of access-token claims the client inspects.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// TokenClaims decodes the held access token without verifying its
// signature; verification is the gateway's job, the client only reads
// claims for display and introspection.
func (m *Manager) TokenClaims(ctx context.Context) (TokenClaims, error) {
	tokens, err := m.tokens.Get(ctx)
	if err != nil {
		return TokenClaims{}, err
	}
	if tokens.AccessToken == "" {
		return TokenClaims{}, fmt.Errorf("no access token held")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokens.AccessToken, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("parsing access token: %w", err)
	}

	out := TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
