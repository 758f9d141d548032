// Package session owns the authentication lifecycle: one explicit Session
// object per application, no ambient globals. The token itself is opaque;
// the current user is always resolved by asking the backend.
package session

import (
	"context"
	"sync"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// State is the session's position in its lifecycle:
//
//	unknown → checking → authenticated | anonymous
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// TokenStore is the durable single-slot token storage the session drives.
// storage.Store satisfies it.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	SetAccessToken(ctx context.Context, token string) error
	ClearAccessToken(ctx context.Context) error
}

// Session tracks the current user. All methods are safe for concurrent use.
type Session struct {
	client api.Client
	tokens TokenStore
	log    logging.Logger

	mu      sync.Mutex
	state   State
	user    *models.User
	lastErr error
}

func New(client api.Client, tokens TokenStore, log logging.Logger) *Session {
	return &Session{client: client, tokens: tokens, log: log, state: StateUnknown}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated user, or nil.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Err returns the most recent login/register failure, cleared on success
// and on logout.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) setState(state State, user *models.User, err error) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.lastErr = err
	s.mu.Unlock()
}

// Check resolves the stored token to a user at startup. No token means
// anonymous without any network traffic; a token the backend rejects is
// cleared so the next start skips the doomed request. Check is idempotent
// and never returns an error: the outcome is the resulting state.
func (s *Session) Check(ctx context.Context) State {
	s.setState(StateChecking, nil, nil)

	token, err := s.tokens.AccessToken(ctx)
	if err != nil || token == "" {
		if err != nil {
			s.log.Warn(ctx, "token read failed", "err", err)
		}
		s.setState(StateAnonymous, nil, nil)
		return StateAnonymous
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		s.log.Info(ctx, "stored session rejected", "err", err)
		if clearErr := s.tokens.ClearAccessToken(ctx); clearErr != nil {
			s.log.Warn(ctx, "token clear failed", "err", clearErr)
		}
		s.setState(StateAnonymous, nil, nil)
		return StateAnonymous
	}

	s.setState(StateAuthenticated, user, nil)
	return StateAuthenticated
}

// Login authenticates, persists the returned token, and becomes
// authenticated with the user from the login response. On failure the
// session keeps its previous authentication state and records the error.
func (s *Session) Login(ctx context.Context, email, password string) error {
	user, err := func() (*models.User, error) {
		token, user, err := s.client.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}
		if err := s.tokens.SetAccessToken(ctx, token); err != nil {
			return nil, err
		}
		return user, nil
	}()
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	s.setState(StateAuthenticated, user, nil)
	s.log.Info(ctx, "logged in", "user", user.Username)
	return nil
}

// Logout clears the token and resets to anonymous. Purely local; there is
// no server-side session to end.
func (s *Session) Logout(ctx context.Context) error {
	err := s.tokens.ClearAccessToken(ctx)
	s.setState(StateAnonymous, nil, nil)
	return err
}

// Register creates an account. It does not log in: new accounts need admin
// verification, so the caller routes back to login.
func (s *Session) Register(ctx context.Context, input api.RegisterInput) (*models.User, error) {
	user, err := s.client.Register(ctx, input)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	return user, nil
}
