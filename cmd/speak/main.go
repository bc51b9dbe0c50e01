package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipe-ideas/internal/core/recipe"
	"recipe-ideas/internal/core/speech"
	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"

	"go.uber.org/zap"
)

// speak 把一段文字或一份食譜唸出來
// 引擎選擇與 API 相同：遠端優先，失敗時退回本地合成
func main() {
	text := flag.String("text", "", "text to speak")
	recipeFile := flag.String("recipe", "", "path to a recipe JSON file to narrate")
	engine := flag.String("engine", "auto", "synthesis engine: auto | remote | local")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	input, err := resolveText(*text, *recipeFile)
	if err != nil {
		common.LogFatal("無法取得朗讀文字", zap.Error(err))
	}

	synthesizer, err := buildSynthesizer(cfg, *engine)
	if err != nil {
		common.LogFatal("引擎設定錯誤", zap.Error(err))
	}

	clip, err := synthesizer.Synthesize(context.Background(), input)
	if err != nil {
		common.LogFatal("語音合成失敗", zap.Error(err))
	}
	common.LogInfo("語音合成完成",
		zap.String("engine", clip.Engine),
		zap.Int("sample_rate", clip.SampleRate),
		zap.Int("audio_bytes", len(clip.PCM)),
	)

	player, err := speech.NewPlayer(clip)
	if err != nil {
		common.LogFatal("音訊裝置初始化失敗", zap.Error(err))
	}
	playback := player.Play(clip)

	// Ctrl-C 中斷播放
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-playback.Done():
	case <-quit:
		playback.Stop()
		<-playback.Done()
		common.LogInfo("播放已中斷")
	}
}

// resolveText 決定朗讀內容：直接文字或食譜朗讀稿
func resolveText(text, recipeFile string) (string, error) {
	if text != "" {
		return text, nil
	}
	if recipeFile == "" {
		return "", fmt.Errorf("either -text or -recipe is required")
	}

	data, err := os.ReadFile(recipeFile)
	if err != nil {
		return "", err
	}
	var r recipe.Recipe
	if err := common.ParseJSONStrict(string(data), &r); err != nil {
		return "", fmt.Errorf("invalid recipe file: %w", err)
	}
	return speech.RecipeScript(r), nil
}

// buildSynthesizer 依 engine 旗標組出合成鏈
func buildSynthesizer(cfg *config.Config, engine string) (speech.Synthesizer, error) {
	local := speech.NewLocalEngine(cfg.Speech.LocalCommand)
	remote := speech.NewElevenLabsEngine(cfg)

	switch engine {
	case "auto":
		if remote == nil {
			return speech.NewChain(nil, local), nil
		}
		return speech.NewChain(remote, local), nil
	case "remote":
		if remote == nil {
			return nil, fmt.Errorf("remote engine requires ELEVENLABS_API_KEY")
		}
		return speech.NewChain(remote, nil), nil
	case "local":
		return speech.NewChain(nil, local), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}
