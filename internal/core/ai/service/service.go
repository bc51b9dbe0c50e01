package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"recipe-ideas/internal/core/ai/cache"
	"recipe-ideas/internal/core/ai/provider"
	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"

	"go.uber.org/zap"
)

// Response AI 回應
type Response struct {
	Content  string
	CacheHit bool
}

// Service AI 服務，統一處理快取與請求頻率
type Service struct {
	config      *config.Config
	provider    provider.Provider
	cache       cache.Cache
	mu          sync.Mutex
	lastRequest time.Time
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, p provider.Provider, c cache.Cache) *Service {
	return &Service{
		config:   cfg,
		provider: p,
		cache:    c,
	}
}

// ProcessRequest 統一對外方法：查快取、打供應商、回寫快取
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	// 統一 prompt 格式，確保快取 key 一致
	prompt = strings.Join(strings.Fields(strings.TrimSpace(prompt)), " ")

	if s.cache != nil {
		if val, err := s.cache.Get(ctx, prompt); err == nil && val != "" {
			return &Response{Content: val, CacheHit: true}, nil
		}
	}

	start := time.Now()
	content, err := s.provider.Generate(ctx, prompt)
	common.LogAICall(s.provider.Model(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, prompt, content); err != nil && !errors.Is(err, common.ErrCacheFull) {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}

	return &Response{Content: content}, nil
}

// checkRequestRate 同一服務實例的最小請求間隔
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && now.Sub(s.lastRequest) < s.config.RateLimit.Window {
		return common.ErrTooManyRequests
	}

	s.lastRequest = now
	return nil
}
