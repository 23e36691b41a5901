package store

import (
	"path/filepath"
	"sync"

	"threeclick/internal/domain"
)

const consentFilename = "cookie_consent.json"

// ConsentFileStore persists the cookie-consent record.
type ConsentFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewConsentFileStore returns a ConsentFileStore rooted at dir.
func NewConsentFileStore(dir string) *ConsentFileStore {
	return &ConsentFileStore{dir: dir}
}

// SaveConsent writes the consent record, replacing any previous one.
func (s *ConsentFileStore) SaveConsent(rec domain.ConsentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, consentFilename), rec, 0o644)
}

// LoadConsent returns the stored record. ok is false when the user has never
// answered the banner.
func (s *ConsentFileStore) LoadConsent() (domain.ConsentRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, consentFilename))
	if err != nil {
		return domain.ConsentRecord{}, false, err
	}
	if b == nil {
		return domain.ConsentRecord{}, false, nil
	}
	var rec domain.ConsentRecord
	if err := readJSON(filepath.Join(s.dir, consentFilename), &rec); err != nil {
		return domain.ConsentRecord{}, false, err
	}
	return rec, true, nil
}

// Compile-time assertion that ConsentFileStore implements domain.ConsentStore.
var _ domain.ConsentStore = (*ConsentFileStore)(nil)
