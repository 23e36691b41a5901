package store

import (
	"path/filepath"
	"sync"

	"threeclick/internal/domain"
)

// Fixed storage keys, one file per key.
const (
	tokenFilename       = "token.json"
	sealedTokenFilename = "token.enc"
)

type tokenRecord struct {
	Token string `json:"token"`
}

// TokenFileStore persists the bearer token to disk. With a non-empty
// passphrase the token is sealed with a scrypt-derived key; otherwise it is
// stored as plain JSON with owner-only permissions.
type TokenFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewTokenFileStore returns a TokenFileStore rooted at dir. passphrase may be
// empty for an unsealed store.
func NewTokenFileStore(dir, passphrase string) *TokenFileStore {
	return &TokenFileStore{dir: dir, passphrase: passphrase}
}

func (s *TokenFileStore) path() string {
	if s.passphrase != "" {
		return filepath.Join(s.dir, sealedTokenFilename)
	}
	return filepath.Join(s.dir, tokenFilename)
}

// SaveToken writes the token, replacing any previous one.
func (s *TokenFileStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passphrase == "" {
		return writeJSON(s.path(), tokenRecord{Token: token}, 0o600)
	}
	N, r, p := scryptParamsDefault()
	ct, err := seal(s.passphrase, []byte(token), N, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.path(), ct, 0o600)
}

// LoadToken returns the persisted token. ok is false when no token is stored.
func (s *TokenFileStore) LoadToken() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	if err != nil {
		return "", false, err
	}
	if b == nil {
		return "", false, nil
	}

	if s.passphrase == "" {
		var rec tokenRecord
		if err := readJSON(s.path(), &rec); err != nil {
			return "", false, err
		}
		return rec.Token, rec.Token != "", nil
	}

	pt, err := open(s.passphrase, b)
	if err != nil {
		return "", false, err
	}
	return string(pt), len(pt) > 0, nil
}

// ClearToken removes the token file. Clearing an absent token is a no-op.
func (s *TokenFileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path())
}

// Compile-time assertion that TokenFileStore implements domain.TokenStore.
var _ domain.TokenStore = (*TokenFileStore)(nil)
