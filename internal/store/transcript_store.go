package store

import (
	"path/filepath"
	"sync"

	"threeclick/internal/domain"
)

const transcriptFilename = "chat_history.json"

// TranscriptFileStore persists the chat transcript.
type TranscriptFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewTranscriptFileStore returns a TranscriptFileStore rooted at dir.
func NewTranscriptFileStore(dir string) *TranscriptFileStore {
	return &TranscriptFileStore{dir: dir}
}

// SaveTranscript writes the full transcript, replacing any previous one.
func (s *TranscriptFileStore) SaveTranscript(msgs []domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, transcriptFilename), msgs, 0o644)
}

// LoadTranscript returns the stored transcript; an absent file yields an
// empty transcript.
func (s *TranscriptFileStore) LoadTranscript() ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []domain.ChatMessage
	if err := readJSON(filepath.Join(s.dir, transcriptFilename), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Compile-time assertion that TranscriptFileStore implements domain.TranscriptStore.
var _ domain.TranscriptStore = (*TranscriptFileStore)(nil)
