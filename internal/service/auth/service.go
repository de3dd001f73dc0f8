package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/cmlabs-hris/workforce/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	credential.AccountRepository
	credential.AuthSessionRepository
	jwt.Service
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthService(db *database.DB, accountRepository credential.AccountRepository, authSessionRepository credential.AuthSessionRepository, jwtService jwt.Service, sessionTTL time.Duration) credential.CredentialService {
	return &AuthServiceImpl{
		db:                    db,
		AccountRepository:     accountRepository,
		AuthSessionRepository: authSessionRepository,
		Service:               jwtService,
		sessionTTL:            sessionTTL,
		now:                   time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignUp implements credential.CredentialService.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req credential.SignUpRequest) (credential.SignUpResponse, error) {
	if err := req.Validate(); err != nil {
		return credential.SignUpResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return credential.SignUpResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := a.AccountRepository.Create(ctx, credential.Account{
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return credential.SignUpResponse{}, err
	}
	return credential.SignUpResponse{UserID: account.ID}, nil
}

// SignIn implements credential.CredentialService.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req credential.SignInRequest) (credential.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return credential.SignInResponse{}, err
	}

	account, err := a.AccountRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, credential.ErrAccountNotFound) {
			return credential.SignInResponse{}, credential.ErrInvalidCredentials
		}
		return credential.SignInResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return credential.SignInResponse{}, credential.ErrInvalidCredentials
	}

	var response credential.SignInResponse
	now := a.now()
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.AccountRepository.UpdateLastSignIn(txCtx, account.ID, now); err != nil {
			return fmt.Errorf("failed to update last sign in: %w", err)
		}

		session, err := a.AuthSessionRepository.Create(txCtx, credential.AuthSession{
			UserID:    account.ID,
			ExpiresAt: now.Add(a.sessionTTL),
		})
		if err != nil {
			return fmt.Errorf("failed to create auth session: %w", err)
		}

		token, expiresAt, err := a.Service.GenerateAccessToken(account.ID, session.ID)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		response = credential.SignInResponse{
			UserID:      account.ID,
			AccessToken: token,
			ExpiresAt:   expiresAt,
		}
		return nil
	})
	if err != nil {
		return credential.SignInResponse{}, err
	}
	return response, nil
}

// SignOut implements credential.CredentialService.
func (a *AuthServiceImpl) SignOut(ctx context.Context, sessionID string) error {
	if err := a.AuthSessionRepository.Revoke(ctx, sessionID, a.now()); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// VerifySession implements credential.CredentialService.
func (a *AuthServiceImpl) VerifySession(ctx context.Context, userID, sessionID string) error {
	session, err := a.AuthSessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, credential.ErrSessionNotFound) {
			return credential.ErrSessionRevoked
		}
		return fmt.Errorf("failed to get auth session: %w", err)
	}
	if session.UserID != userID || !session.Active(a.now()) {
		return credential.ErrSessionRevoked
	}
	return nil
}
