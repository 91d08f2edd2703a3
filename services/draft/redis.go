package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"anndann/models"

	"github.com/go-redis/redis/v8"
)

const draftPrefix = "draft:volunteer:"

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// maxMergeAttempts bounds optimistic retries when a key changes between
// WATCH and EXEC.
const maxMergeAttempts = 5

// RedisStore keeps drafts in Redis, expiring them after ttl of inactivity.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (models.VolunteerDraft, error) {
	if key == "" {
		return models.VolunteerDraft{}, ErrNoSession
	}
	return s.read(ctx, s.client, draftPrefix+key)
}

// Merge applies partial inside a WATCH/MULTI transaction so that concurrent
// merges on the same session cannot drop each other's fields.
func (s *RedisStore) Merge(ctx context.Context, key string, partial models.VolunteerDraft) (models.VolunteerDraft, error) {
	if key == "" {
		return models.VolunteerDraft{}, ErrNoSession
	}
	redisKey := draftPrefix + key

	var merged models.VolunteerDraft
	txf := func(tx *redis.Tx) error {
		current, err := s.read(ctx, tx, redisKey)
		if err != nil {
			return err
		}
		merged = current.Merge(partial)
		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("marshal draft: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisKey, data, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, redisKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return models.VolunteerDraft{}, err
		}
		return merged, nil
	}
	return models.VolunteerDraft{}, fmt.Errorf("merge draft %s: too much contention", key)
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if key == "" {
		return ErrNoSession
	}
	return s.client.Del(ctx, draftPrefix+key).Err()
}

func (s *RedisStore) read(ctx context.Context, c getter, redisKey string) (models.VolunteerDraft, error) {
	data, err := c.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.VolunteerDraft{}, nil
	}
	if err != nil {
		return models.VolunteerDraft{}, err
	}
	var d models.VolunteerDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return models.VolunteerDraft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}
