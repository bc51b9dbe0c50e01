package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-ideas/internal/infrastructure/config"
)

// Cache AI 回應快取介面，鍵一律由 prompt 推導
type Cache interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
	Close() error
}

// NewManager 依設定建立快取後端，停用時回傳 nil
func NewManager(cfg *config.Config) (Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return newRedisCache(cfg)
	case config.CacheBackendMemory:
		return newMemoryCache(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// hashPrompt 計算 prompt 的 SHA-256，當作快取鍵
func hashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
