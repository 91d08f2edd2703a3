package draft

import (
	"context"

	"anndann/models"

	"go.uber.org/zap"
)

// Session binds a Store to one session key. It is the draft handle the
// wizard steps work with.
type Session struct {
	store  Store
	key    string
	logger *zap.Logger
}

func NewSession(store Store, key string, logger *zap.Logger) *Session {
	return &Session{store: store, key: key, logger: logger}
}

// Key returns the bound session key.
func (s *Session) Key() string {
	return s.key
}

// Get never fails: a store error is logged and reported as an empty draft.
func (s *Session) Get(ctx context.Context) models.VolunteerDraft {
	d, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read draft; starting empty", zap.String("session", s.key), zap.Error(err))
		return models.VolunteerDraft{}
	}
	return d
}

func (s *Session) Merge(ctx context.Context, partial models.VolunteerDraft) error {
	_, err := s.store.Merge(ctx, s.key, partial)
	return err
}

func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, s.key)
}
