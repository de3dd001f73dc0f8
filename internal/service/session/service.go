package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/pkg/liveness"
)

// SessionServiceImpl is the single owner of the process-wide session. All
// workflows receive it as an identity.SessionContext.
type SessionServiceImpl struct {
	provider identity.Provider
	identity.ProfileRepository
	logger *slog.Logger

	mu      sync.Mutex
	state   identity.State
	current *identity.Session
	scope   liveness.Scope
}

func NewSessionService(provider identity.Provider, profileRepository identity.ProfileRepository, logger *slog.Logger) identity.SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionServiceImpl{
		provider:          provider,
		ProfileRepository: profileRepository,
		logger:            logger,
	}
}

// beginAuth moves Anonymous to Authenticating. Only one login or restore may
// be in flight, and only while no session exists.
func (s *SessionServiceImpl) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case identity.StateAuthenticating:
		return identity.ErrLoginInProgress
	case identity.StateAuthenticated:
		return identity.ErrAlreadyAuthenticated
	}
	s.state = identity.StateAuthenticating
	return nil
}

func (s *SessionServiceImpl) finishAuth(session *identity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == nil {
		s.state = identity.StateAnonymous
		s.current = nil
		return
	}
	s.state = identity.StateAuthenticated
	s.current = session
}

// Login implements identity.SessionService.
func (s *SessionServiceImpl) Login(ctx context.Context, req identity.LoginRequest) (identity.Identity, error) {
	if err := req.Validate(); err != nil {
		return identity.Identity{}, err
	}
	if err := s.beginAuth(); err != nil {
		return identity.Identity{}, err
	}

	cred, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.finishAuth(nil)
		s.logger.InfoContext(ctx, "login rejected", slog.String("error", err.Error()))
		return identity.Identity{}, fmt.Errorf("sign in: %w", err)
	}

	session, err := s.resolve(ctx, cred)
	if err != nil {
		s.abandon(ctx, cred)
		s.finishAuth(nil)
		return identity.Identity{}, err
	}
	s.finishAuth(session)

	s.logger.InfoContext(ctx, "logged in",
		slog.String("user_id", session.Identity.ID),
		slog.String("role", string(session.Identity.Role)),
	)
	return session.Identity, nil
}

// resolve turns a provider credential into a session by looking up the
// users row.
func (s *SessionServiceImpl) resolve(ctx context.Context, cred identity.Credential) (*identity.Session, error) {
	profile, err := s.ProfileRepository.GetByID(ctx, cred.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrProfileNotFound) {
			s.logger.WarnContext(ctx, "credential has no profile", slog.String("user_id", cred.UserID))
			return nil, identity.ErrProfileMissing
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile row: %w", err)
	}

	return &identity.Session{
		Identity: profile.Identity(),
		Token:    cred.Token,
	}, nil
}

// abandon signs out a credential that did not become a session. When the
// provider cannot be reached the local copy is dropped anyway, so a later
// Restore does not pick it up.
func (s *SessionServiceImpl) abandon(ctx context.Context, cred identity.Credential) {
	err := s.provider.SignOut(ctx, cred.Token)
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "sign out of unused credential failed",
		slog.String("user_id", cred.UserID),
		slog.String("error", err.Error()),
	)
	if err := s.provider.Discard(ctx); err != nil {
		s.logger.WarnContext(ctx, "discard credential failed",
			slog.String("user_id", cred.UserID),
			slog.String("error", err.Error()),
		)
	}
}

// Register implements identity.SessionService.
func (s *SessionServiceImpl) Register(ctx context.Context, req identity.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := s.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return &identity.RegistrationError{Stage: identity.StageSignUp, Err: err}
	}

	_, err = s.ProfileRepository.Create(ctx, identity.Profile{
		ID:    userID,
		Name:  req.DisplayName,
		Role:  string(identity.RoleEmployee),
		Email: req.Email,
	})
	if err != nil {
		// The provider account is left in place.
		s.logger.ErrorContext(ctx, "profile insert failed after sign up",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return &identity.RegistrationError{Stage: identity.StageProfile, Err: err}
	}

	s.logger.InfoContext(ctx, "registered", slog.String("user_id", userID))
	return nil
}

// Restore implements identity.SessionService.
func (s *SessionServiceImpl) Restore(ctx context.Context) (*identity.Identity, error) {
	if err := s.beginAuth(); err != nil {
		return nil, err
	}

	cred, err := s.provider.CurrentSession(ctx)
	if err != nil {
		s.finishAuth(nil)
		return nil, fmt.Errorf("get current session: %w", err)
	}
	if cred == nil {
		s.finishAuth(nil)
		s.logger.DebugContext(ctx, "no stored session")
		return nil, nil
	}

	session, err := s.resolve(ctx, *cred)
	if err != nil {
		if errors.Is(err, identity.ErrProfileMissing) {
			s.abandon(ctx, *cred)
		}
		s.finishAuth(nil)
		return nil, err
	}
	s.finishAuth(session)

	s.logger.InfoContext(ctx, "session restored", slog.String("user_id", session.Identity.ID))
	who := session.Identity
	return &who, nil
}

// Logout implements identity.SessionService.
func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.state != identity.StateAuthenticated || s.current == nil {
		s.mu.Unlock()
		return identity.ErrNotAuthenticated
	}
	session := *s.current
	s.mu.Unlock()

	if err := s.provider.SignOut(ctx, session.Token); err != nil {
		s.logger.WarnContext(ctx, "logout failed",
			slog.String("user_id", session.Identity.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("sign out: %w", err)
	}

	s.clear()
	s.logger.InfoContext(ctx, "logged out", slog.String("user_id", session.Identity.ID))
	return nil
}

func (s *SessionServiceImpl) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.state = identity.StateAnonymous
	s.scope.Invalidate()
}

// Current implements identity.SessionService.
func (s *SessionServiceImpl) Current() (identity.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return identity.Identity{}, false
	}
	return s.current.Identity, true
}

// State implements identity.SessionService.
func (s *SessionServiceImpl) State() identity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Require implements identity.SessionContext.
func (s *SessionServiceImpl) Require() (identity.Session, liveness.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != identity.StateAuthenticated || s.current == nil {
		return identity.Session{}, liveness.Token{}, identity.ErrNotAuthenticated
	}
	return *s.current, s.scope.Token(), nil
}

// Observe implements identity.SessionContext.
func (s *SessionServiceImpl) Observe(err error) {
	if err == nil || !errors.Is(err, identity.ErrSessionExpired) {
		return
	}

	s.mu.Lock()
	expired := s.current
	s.mu.Unlock()
	if expired == nil {
		return
	}

	s.clear()
	s.logger.Warn("session expired", slog.String("user_id", expired.Identity.ID))
}
