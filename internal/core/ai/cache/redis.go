package cache

import (
	"context"
	"fmt"

	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisCache Redis 快取後端，多實例部署時共用回應
type redisCache struct {
	client *redis.Client
	config *config.Config
}

func newRedisCache(cfg *config.Config) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("後端", config.CacheBackendRedis),
		zap.String("位址", cfg.Cache.RedisAddr),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)
	return &redisCache{client: client, config: cfg}, nil
}

// Get 查詢快取
func (c *redisCache) Get(ctx context.Context, prompt string) (string, error) {
	key := c.key(prompt)
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss(config.CacheBackendRedis, key)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	common.LogCacheHit(config.CacheBackendRedis, key)
	return val, nil
}

// Set 寫入快取，TTL 由 Redis 負責
func (c *redisCache) Set(ctx context.Context, prompt, value string) error {
	if err := c.client.Set(ctx, c.key(prompt), value, c.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

func (c *redisCache) key(prompt string) string {
	return "ai:response:" + hashPrompt(prompt)
}

// Close 關閉 Redis 連線
func (c *redisCache) Close() error {
	return c.client.Close()
}
