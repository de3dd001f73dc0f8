package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
)

// Provider is the identity provider view of the store. It keeps the most
// recent credential the way a client SDK keeps its session.
type Provider struct {
	store *Store
}

func (p *Provider) SignUp(ctx context.Context, email, password string) (string, error) {
	s := p.store
	if err := s.begin(ctx, OpSignUp); err != nil {
		return "", err
	}
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return "", credential.ErrEmailExists
	}
	id := s.nextID("user")
	s.accounts[email] = account{id: id, email: email, password: password}
	return id, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (identity.Credential, error) {
	s := p.store
	if err := s.begin(ctx, OpSignIn); err != nil {
		return identity.Credential{}, err
	}
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok || acc.password != password {
		return identity.Credential{}, identity.ErrInvalidCredentials
	}
	cred := identity.Credential{
		UserID:    acc.id,
		Token:     s.nextID("token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.tokens[cred.Token] = acc.id
	s.current = &cred
	return cred, nil
}

func (p *Provider) SignOut(ctx context.Context, token string) error {
	s := p.store
	if err := s.begin(ctx, OpSignOut); err != nil {
		return err
	}
	defer s.mu.Unlock()

	delete(s.tokens, token)
	if s.current != nil && s.current.Token == token {
		s.current = nil
	}
	return nil
}

func (p *Provider) Discard(ctx context.Context) error {
	s := p.store
	if err := s.begin(ctx, OpDiscard); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.current = nil
	return nil
}

func (p *Provider) CurrentSession(ctx context.Context) (*identity.Credential, error) {
	s := p.store
	if err := s.begin(ctx, OpCurrentSession); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}
	if _, ok := s.tokens[s.current.Token]; !ok {
		s.current = nil
		return nil, nil
	}
	cred := *s.current
	return &cred, nil
}
