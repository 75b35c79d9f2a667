package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store keeps sessions in Redis under "session:<id>" with a sliding TTL.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, id string) (Data, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed Store. A zero ttl means DefaultTTL.
func NewRedisStore(rdb redis.UniversalClient, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, data Data) (string, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session: marshal: %w", err)
	}

	id := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session: set: %w", err)
	}
	return id, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (Data, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, fmt.Errorf("session: get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("session: unmarshal: %w", err)
	}

	// Sliding expiry; a failure here only shortens the session.
	_ = s.rdb.Expire(ctx, keyPrefix+id, s.ttl).Err()
	return data, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: del: %w", err)
	}
	return nil
}
