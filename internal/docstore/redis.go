package docstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the durable Store used in deployment. Documents are stored
// as JSON strings, sets as Redis sets. No TTLs: daily words and user stats
// must survive indefinitely.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// DialRedis connects to addr and verifies the connection with a ping.
func DialRedis(ctx context.Context, addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return NewRedisStore(rdb), nil
}

func (s *RedisStore) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, v)
}

func (s *RedisStore) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, 0).Err()
}

func (s *RedisStore) SetNX(ctx context.Context, key string, v any) (bool, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, raw, 0).Result()
}

func (s *RedisStore) AddToSet(ctx context.Context, set, member string) error {
	return s.rdb.SAdd(ctx, set, member).Err()
}

func (s *RedisStore) SetMembers(ctx context.Context, set string) ([]string, error) {
	return s.rdb.SMembers(ctx, set).Result()
}

func (s *RedisStore) SetContains(ctx context.Context, set, member string) (bool, error) {
	return s.rdb.SIsMember(ctx, set, member).Result()
}
