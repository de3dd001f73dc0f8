package remote

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/pkg/apperror"
)

// Provider implements identity.Provider against the auth endpoints and keeps
// the issued credential in the client's TokenStore.
type Provider struct {
	client *Client
}

func (p *Provider) SignUp(ctx context.Context, email, password string) (string, error) {
	var resp credential.SignUpResponse
	err := p.client.do(ctx, call{
		op:     "auth.signup",
		method: http.MethodPost,
		path:   "/auth/signup",
		body:   credential.SignUpRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (identity.Credential, error) {
	var resp credential.SignInResponse
	err := p.client.do(ctx, call{
		op:     "auth.signin",
		method: http.MethodPost,
		path:   "/auth/signin",
		body:   credential.SignInRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		var remoteErr *apperror.RemoteError
		if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusUnauthorized {
			remoteErr.Err = identity.ErrInvalidCredentials
		}
		return identity.Credential{}, err
	}

	cred := identity.Credential{
		UserID:    resp.UserID,
		Token:     resp.AccessToken,
		ExpiresAt: time.Unix(resp.ExpiresAt, 0),
	}
	if err := p.client.tokens.Save(cred); err != nil {
		return identity.Credential{}, apperror.NewRemoteError("auth.signin", 0, "", err)
	}
	return cred, nil
}

func (p *Provider) Discard(context.Context) error {
	if err := p.client.tokens.Clear(); err != nil {
		return apperror.NewRemoteError("auth.discard", 0, "", err)
	}
	return nil
}

// SignOut treats an already invalid token as signed out.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	err := p.client.do(ctx, call{
		op:     "auth.signout",
		method: http.MethodPost,
		path:   "/auth/signout",
		token:  token,
	}, nil)
	if err != nil && !errors.Is(err, identity.ErrSessionExpired) {
		return err
	}
	if err := p.client.tokens.Clear(); err != nil {
		return apperror.NewRemoteError("auth.signout", 0, "", err)
	}
	return nil
}

func (p *Provider) CurrentSession(ctx context.Context) (*identity.Credential, error) {
	cred, err := p.client.tokens.Load()
	if err != nil {
		return nil, apperror.NewRemoteError("auth.session", 0, "", err)
	}
	if cred == nil {
		return nil, nil
	}
	if !cred.ExpiresAt.IsZero() && time.Now().After(cred.ExpiresAt) {
		_ = p.client.tokens.Clear()
		return nil, nil
	}

	var resp credential.SessionResponse
	err = p.client.do(ctx, call{
		op:     "auth.session",
		method: http.MethodGet,
		path:   "/auth/session",
		token:  cred.Token,
	}, &resp)
	if err != nil {
		if errors.Is(err, identity.ErrSessionExpired) {
			_ = p.client.tokens.Clear()
			return nil, nil
		}
		return nil, err
	}

	cred.UserID = resp.UserID
	return cred, nil
}
