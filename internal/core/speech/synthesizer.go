package speech

import (
	"context"

	"recipe-ideas/internal/pkg/common"
)

// 合成引擎名稱
const (
	EngineElevenLabs = "elevenlabs"
	EngineLocal      = "local"
)

// Clip 合成完成的音訊片段，統一為 16-bit little-endian 單聲道 PCM
type Clip struct {
	PCM        []byte
	SampleRate int
	Channels   int
	Engine     string
}

// Synthesizer 語音合成介面
type Synthesizer interface {
	// Synthesize 將文字合成為音訊片段
	Synthesize(ctx context.Context, text string) (*Clip, error)
	// Name 引擎名稱
	Name() string
}

// Chain 兩層合成鏈：遠端失敗或未設定時退回本地引擎
// 兩層都不可用時回傳最後一層的錯誤
type Chain struct {
	primary  Synthesizer
	fallback Synthesizer
}

// NewChain 建立合成鏈，primary 可為 nil（直接走本地）
func NewChain(primary, fallback Synthesizer) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

// Synthesize 依序嘗試各層引擎
func (c *Chain) Synthesize(ctx context.Context, text string) (*Clip, error) {
	if text == "" {
		return nil, common.NewValidationError("text must not be empty")
	}

	if c.primary != nil {
		clip, err := c.primary.Synthesize(ctx, text)
		if err == nil {
			return clip, nil
		}
		common.LogFallback("speech-synthesis", err, "")
	}

	if c.fallback == nil {
		return nil, common.ErrPlatformUnsupported
	}
	return c.fallback.Synthesize(ctx, text)
}

// Name 回報實際設定的組合
func (c *Chain) Name() string {
	if c.primary != nil {
		return c.primary.Name()
	}
	if c.fallback != nil {
		return c.fallback.Name()
	}
	return "none"
}
