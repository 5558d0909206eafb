package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "milxos:prefs:"

// RedisKV stores preferences as plain string keys under Prefix, so every serve
// instance behind a load balancer sees the same accent.
type RedisKV struct {
	client *redis.Client
	prefix string
}

type RedisOptions struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisKV{client: client, prefix: prefix}, nil
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisKV) Close() error { return s.client.Close() }
