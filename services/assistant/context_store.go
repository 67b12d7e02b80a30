package assistant

import (
	"context"
	"encoding/json"
	"time"

	"autodetail/models"

	"github.com/go-redis/redis/v8"
)

const contextPrefix = "assistant:ctx:"

// ContextStore persists per-user conversation state between messages.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AssistantContext, error)
	Set(ctx context.Context, userID string, state *models.AssistantContext) error
	Clear(ctx context.Context, userID string) error
}

// RedisContextStore keeps conversation state in the context Redis DB with a
// sliding TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.AssistantContext, error) {
	data, err := s.client.Get(ctx, contextPrefix+userID).Result()
	if err == redis.Nil {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.AssistantContext
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, state *models.AssistantContext) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, contextPrefix+userID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, contextPrefix+userID).Err()
}
