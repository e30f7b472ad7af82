package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quangdm/cloudscore/internal/models"
)

// RedisStore keeps the draft under one redis key, useful when the same user
// hops between machines.
type RedisStore struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

func NewRedisStore(redisURL, key string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if key == "" {
		key = DefaultSlot
	}
	return &RedisStore{client: client, key: key, now: time.Now}, nil
}

func (s *RedisStore) Save(ctx context.Context, d *models.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*models.Draft, error) {
	payload, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var d models.Draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		// Unreadable slot: treat like a stale draft, not a hard failure.
		_ = s.client.Del(ctx, s.key).Err()
		return nil, nil
	}
	if d.Age(s.now()) > MaxAge {
		if err := s.client.Del(ctx, s.key).Err(); err != nil {
			return nil, fmt.Errorf("failed to discard stale draft: %w", err)
		}
		return nil, nil
	}
	return &d, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
