package speech

import (
	"context"
	"fmt"
	"net/http"

	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// elevenLabsSampleRate pcm_24000 輸出格式的取樣率
const elevenLabsSampleRate = 24000

// ElevenLabsEngine ElevenLabs 語音合成引擎
type ElevenLabsEngine struct {
	config *config.Config
	client *resty.Client
}

// NewElevenLabsEngine 創建 ElevenLabs 引擎，金鑰未設定時回傳 nil
func NewElevenLabsEngine(cfg *config.Config) *ElevenLabsEngine {
	if cfg.Speech.APIKey == "" {
		return nil
	}

	client := resty.New().
		SetBaseURL("https://api.elevenlabs.io/v1").
		SetTimeout(cfg.Speech.Timeout).
		SetHeader("xi-api-key", cfg.Speech.APIKey)

	return &ElevenLabsEngine{
		config: cfg,
		client: client,
	}
}

// Name 引擎名稱
func (e *ElevenLabsEngine) Name() string {
	return EngineElevenLabs
}

// Synthesize 呼叫 ElevenLabs 合成語音，輸出 24kHz 單聲道 PCM
func (e *ElevenLabsEngine) Synthesize(ctx context.Context, text string) (*Clip, error) {
	req := map[string]interface{}{
		"text":     text,
		"model_id": e.config.Speech.Model,
		"voice_settings": map[string]float64{
			"stability":        e.config.Speech.Stability,
			"similarity_boost": e.config.Speech.Similarity,
		},
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(req).
		SetQueryParam("output_format", "pcm_24000").
		Post(fmt.Sprintf("/text-to-speech/%s", e.config.Speech.VoiceID))

	if err != nil {
		return nil, fmt.Errorf("failed to send request to ElevenLabs: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("ElevenLabs 回傳非 200",
			zap.Int("status", resp.StatusCode()),
			zap.String("voice_id", e.config.Speech.VoiceID),
		)
		return nil, fmt.Errorf("ElevenLabs API returned status %d", resp.StatusCode())
	}

	audio := resp.Body()
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio in ElevenLabs response")
	}

	common.LogInfo("語音合成完成",
		zap.String("engine", EngineElevenLabs),
		zap.Int("text_length", len(text)),
		zap.Int("audio_bytes", len(audio)),
	)
	return &Clip{
		PCM:        audio,
		SampleRate: elevenLabsSampleRate,
		Channels:   1,
		Engine:     EngineElevenLabs,
	}, nil
}
