package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

// memoryStore 進程內的 TTL 快取
type memoryStore struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
}

// cacheEntry 緩存條目
type cacheEntry struct {
	value      string
	expiresAt  time.Time
	createdAt  time.Time
	lastAccess time.Time
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// newMemoryStore 創建進程內快取
func newMemoryStore(cfg *config.Config) *memoryStore {
	m := &memoryStore{
		config: cfg,
		store:  make(map[string]cacheEntry),
		done:   make(chan struct{}),
	}

	// 啟動清理過期緩存的協程
	go m.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get 獲取緩存值
func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.store[key]
	if !ok || time.Now().After(entry.expiresAt) {
		m.stats.misses++
		common.LogCacheMiss("nutrition", key)
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	m.store[key] = entry
	m.stats.hits++
	common.LogCacheHit("nutrition", key)
	return entry.value, nil
}

// Set 寫入緩存值，容量滿時淘汰最久未存取的條目
func (m *memoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.config.Cache.MaxSize {
		m.evictOldest()
	}

	now := time.Now()
	m.store[key] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// evictOldest 淘汰最久未存取的條目，呼叫端需持有鎖
func (m *memoryStore) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for k, e := range m.store {
		if oldestKey == "" || e.lastAccess.Before(oldestTime) {
			oldestKey = k
			oldestTime = e.lastAccess
		}
	}
	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
	}
}

// startCleanup 定期清除過期條目
func (m *memoryStore) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			removed := 0
			m.mu.Lock()
			for k, e := range m.store {
				if now.After(e.expiresAt) {
					delete(m.store, k)
					removed++
				}
			}
			m.mu.Unlock()
			if removed > 0 {
				common.LogDebug("清理過期快取",
					zap.Int("removed", removed),
				)
			}
		case <-m.done:
			return
		}
	}
}

// Close 停止清理協程
func (m *memoryStore) Close() error {
	close(m.done)
	return nil
}
