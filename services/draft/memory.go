package draft

import (
	"context"
	"sync"

	"anndann/models"
)

// MemoryStore keeps drafts in process memory. Drafts do not survive a
// restart, matching session-scoped storage.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string]models.VolunteerDraft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]models.VolunteerDraft)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (models.VolunteerDraft, error) {
	if key == "" {
		return models.VolunteerDraft{}, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts[key].Clone(), nil
}

func (s *MemoryStore) Merge(_ context.Context, key string, partial models.VolunteerDraft) (models.VolunteerDraft, error) {
	if key == "" {
		return models.VolunteerDraft{}, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := s.drafts[key].Merge(partial)
	s.drafts[key] = merged
	return merged.Clone(), nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	if key == "" {
		return ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}
