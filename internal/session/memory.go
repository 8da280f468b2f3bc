package session

import (
	"context"
	"sync"

	"github.com/bodhs/bodhs-bot/internal/models"
)

// MemoryStore is the default process-local Store. Nothing survives a
// restart; every user re-selects a mode.
type MemoryStore struct {
	mu    sync.RWMutex
	modes map[string]models.Language
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		modes: make(map[string]models.Language),
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (models.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lang, ok := s.modes[userID]
	if !ok {
		return "", ErrNotFound
	}
	return lang, nil
}

func (s *MemoryStore) Set(_ context.Context, userID string, language models.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.modes[userID] = language
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.modes, userID)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
