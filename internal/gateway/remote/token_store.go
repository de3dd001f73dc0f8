package remote

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/goccy/go-json"
)

// TokenStore persists the provider credential between runs, the way a
// client SDK keeps its session.
type TokenStore interface {
	// Load returns nil when nothing is stored.
	Load() (*identity.Credential, error)
	Save(cred identity.Credential) error
	Clear() error
}

// FileTokenStore keeps the credential as JSON in a 0600 file.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (*identity.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var cred identity.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	if cred.Token == "" {
		return nil, nil
	}
	return &cred, nil
}

func (s *FileTokenStore) Save(cred identity.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

type MemoryTokenStore struct {
	mu   sync.Mutex
	cred *identity.Credential
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (*identity.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil, nil
	}
	cred := *s.cred
	return &cred, nil
}

func (s *MemoryTokenStore) Save(cred identity.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}
