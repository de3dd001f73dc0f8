package credential

import "context"

type CredentialService interface {
	SignUp(ctx context.Context, req SignUpRequest) (SignUpResponse, error)
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)
	SignOut(ctx context.Context, sessionID string) error
	// VerifySession fails with ErrSessionRevoked when the session behind an
	// otherwise valid token is gone.
	VerifySession(ctx context.Context, userID, sessionID string) error
}
