package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// tokenFile is the on-disk layout of the session mirror. Only the
// anti-forgery token is persisted; identity and roles are re-established by
// logging in, the same way the site keeps them in volatile store state.
type tokenFile struct {
	CSRFToken string `yaml:"csrf_token"`
}

// TokenStore persists the anti-forgery token between runs.
type TokenStore struct {
	mu    sync.Mutex
	path  string
	token string
}

// NewTokenStore loads the persisted token, if any, from path. A missing file
// is an empty store, not an error.
func NewTokenStore(path string) (*TokenStore, error) {
	ts := &TokenStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var f tokenFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	ts.token = f.CSRFToken
	return ts, nil
}

// Token returns the current anti-forgery token, empty when none is known.
func (ts *TokenStore) Token() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token
}

// Save stores the token in memory and mirrors it to disk.
func (ts *TokenStore) Save(token string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = token

	data, err := yaml.Marshal(tokenFile{CSRFToken: token})
	if err != nil {
		return fmt.Errorf("encoding session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(ts.path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(ts.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear forgets the token and removes the on-disk mirror.
func (ts *TokenStore) Clear() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = ""

	if err := os.Remove(ts.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
