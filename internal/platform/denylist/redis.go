package denylist

import (
	"context"
	"fmt"
	"log"
	"time"

	"qna_forum/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// TokenStore records revoked token ids until their natural expiry.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Store is the process-wide denylist. It stays disabled (logout is purely a
// client-side token discard) unless ConnectRedis swaps in a real backend.
var Store TokenStore = disabledStore{}

var rdb *redis.Client

const revokedKeyPrefix = "revoked_token:"

func ConnectRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, token denylist disabled")
		return
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	Store = &redisStore{client: rdb}
	fmt.Println("Successfully connected to Redis, token denylist enabled!")
}

func CloseRedis() {
	if rdb != nil {
		rdb.Close()
		fmt.Println("Redis connection closed.")
	}
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Token already expired, nothing to deny
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (s *redisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type disabledStore struct{}

func (disabledStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}

func (disabledStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}
