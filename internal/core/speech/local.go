package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"recipe-ideas/internal/pkg/common"

	"go.uber.org/zap"
)

// LocalEngine 本地語音合成引擎
// 靠系統上的 espeak 類指令把 WAV 寫到 stdout，指令不存在即視為平台不支援
type LocalEngine struct {
	command string
}

// NewLocalEngine 創建本地引擎
func NewLocalEngine(command string) *LocalEngine {
	return &LocalEngine{command: command}
}

// Name 引擎名稱
func (e *LocalEngine) Name() string {
	return EngineLocal
}

// Synthesize 執行本地指令合成語音
func (e *LocalEngine) Synthesize(ctx context.Context, text string) (*Clip, error) {
	path, err := exec.LookPath(e.command)
	if err != nil {
		return nil, common.NewError(common.ErrCodePlatformUnsupported,
			fmt.Sprintf("本機找不到語音合成指令 %q", e.command), 503, err)
	}

	cmd := exec.CommandContext(ctx, path, "--stdout", text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		common.LogWarn("本地語音合成指令失敗",
			zap.String("command", e.command),
			zap.String("stderr", stderr.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("local synthesis command failed: %w", err)
	}

	pcm, sampleRate, channels, err := DecodeWAV(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to decode local synthesis output: %w", err)
	}

	common.LogInfo("語音合成完成",
		zap.String("engine", EngineLocal),
		zap.Int("text_length", len(text)),
		zap.Int("audio_bytes", len(pcm)),
	)
	return &Clip{
		PCM:        pcm,
		SampleRate: sampleRate,
		Channels:   channels,
		Engine:     EngineLocal,
	}, nil
}
