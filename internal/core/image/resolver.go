package image

import (
	"context"
	"math/rand"
	"sync"

	"recipe-ideas/internal/pkg/common"

	"go.uber.org/zap"
)

// Generator 圖片生成介面，方便測試替身
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// Resolver 圖片解析器
// 金鑰未設定或外部生成失敗時退回庫存圖片池，對呼叫端永遠成功
type Resolver struct {
	client Generator
	creds  *CredentialStore
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewResolver 創建圖片解析器
func NewResolver(client Generator, creds *CredentialStore, rng *rand.Rand) *Resolver {
	return &Resolver{
		client: client,
		creds:  creds,
		rng:    rng,
	}
}

// Resolve 解析單張圖片 URL，絕不回傳錯誤
func (r *Resolver) Resolve(ctx context.Context, prompt string) string {
	apiKey := r.creds.Get()
	if apiKey == "" {
		return r.stock()
	}

	url, err := r.client.Generate(ctx, apiKey, prompt)
	if err != nil {
		common.LogFallback("image-generation", err, "")
		return r.stock()
	}

	common.LogDebug("圖片生成成功", zap.String("url", url))
	return url
}

func (r *Resolver) stock() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return randomStock(r.rng)
}
