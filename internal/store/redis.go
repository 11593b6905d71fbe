package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "makhtab:"

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a Store backed by a redis client. All keys are
// namespaced under a fixed prefix so the store can share a database with
// other tenants.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client, prefix: defaultKeyPrefix}
}

func (s *redisStore) key(collection string) string {
	return s.prefix + collection
}

func (s *redisStore) Load(ctx context.Context, collection string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, s.key(collection)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("store get %s: %w", collection, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w: %v", collection, ErrCorruptRecord, err)
	}
	return true, nil
}

func (s *redisStore) Save(ctx context.Context, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}

	if err := s.client.Set(ctx, s.key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("store set %s: %w", collection, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, collection string) error {
	if err := s.client.Del(ctx, s.key(collection)).Err(); err != nil {
		return fmt.Errorf("store del %s: %w", collection, err)
	}
	return nil
}

func (s *redisStore) Exists(ctx context.Context, collection string) (bool, error) {
	count, err := s.client.Exists(ctx, s.key(collection)).Result()
	if err != nil {
		return false, fmt.Errorf("store exists %s: %w", collection, err)
	}
	return count > 0, nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
