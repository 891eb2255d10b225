package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

// redisStore redis 後端快取，多個實例共用查詢結果時使用
type redisStore struct {
	client *redis.Client
	config *config.Config
}

// newRedisStore 創建 redis 快取
func newRedisStore(cfg *config.Config) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已連線")

	return &redisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存值
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("nutrition", key)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	common.LogCacheHit("nutrition", key)
	return value, nil
}

// Set 寫入緩存值
func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉連線
func (s *redisStore) Close() error {
	return s.client.Close()
}
