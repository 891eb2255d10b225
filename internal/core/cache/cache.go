// Package cache 提供營養查詢結果的快取。
// USDA 有每小時的配額限制，同一份食譜裡重複出現的食材、
// 或多個請求之間的常見食材，都不需要重打 API。
package cache

import (
	"context"
	"fmt"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

// Store 快取後端介面。memory 與 redis 兩種實作由設定選擇。
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// New 依設定創建快取後端。快取關閉時回傳 (nil, nil)，呼叫端需容忍 nil Store。
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return newRedisStore(cfg)
	case "memory":
		return newMemoryStore(cfg), nil
	}
	return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
}
