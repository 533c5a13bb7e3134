package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/config"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	logrus.WithField("addr", addr).Info("Successfully connected to Redis")

	return client, nil
}

// redisTokenStore keeps one key per issued token, expiring with the token.
type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) error {
	return s.client.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err()
}

func (s *redisTokenStore) RevokeAll(ctx context.Context, userID int64) error {
	var keys []string
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		iter := s.client.Scan(ctx, 0, tokenKey(tokenType, userID, "*"), 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
