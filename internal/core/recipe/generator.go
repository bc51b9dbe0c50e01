package recipe

import (
	"context"
	"time"

	"recipe-ideas/internal/core/ai/service"
	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"

	"go.uber.org/zap"
)

// TextService 文字生成服務介面，包住 AI 服務以便測試替身
type TextService interface {
	ProcessRequest(ctx context.Context, prompt string) (*service.Response, error)
}

// ImageResolver 圖片解析介面，實作必須保證不失敗
type ImageResolver interface {
	Resolve(ctx context.Context, prompt string) string
}

// Hooks 生成過程的觀測掛勾，欄位可為 nil
type Hooks struct {
	// OnValidation 輸入驗證未通過時通知一次
	OnValidation func(message string)
	// OnFallback 某個生成階段退化時通知，stage 標明退化點
	OnFallback func(stage string, reason error)
}

// Generator 食譜生成協調器
// 順序：輸入驗證 → 模擬延遲 → AI 生成 → 菜單過濾 → 本地合成 → 圖片解析
// 除了 context 取消之外，任何輸入都會產出結果，生成階段的失敗只會降級
type Generator struct {
	config  *config.Config
	ai      TextService
	images  ImageResolver
	mock    *MockSynthesizer
	catalog []Recipe
	hooks   Hooks
}

// NewGenerator 創建生成協調器，ai 可為 nil（僅本地路徑）
func NewGenerator(cfg *config.Config, ai TextService, images ImageResolver, mock *MockSynthesizer, hooks Hooks) *Generator {
	return &Generator{
		config:  cfg,
		ai:      ai,
		images:  images,
		mock:    mock,
		catalog: Catalog(),
		hooks:   hooks,
	}
}

// Generate 生成食譜
// 食材清單為空時回傳空集合並記錄一次驗證通知，不視為錯誤
func (g *Generator) Generate(ctx context.Context, in Input) ([]Recipe, error) {
	in.Normalize()

	if len(in.Ingredients) == 0 {
		msg := "Please add at least one ingredient to generate recipes"
		common.LogWarn("食譜生成輸入為空", zap.String("message", msg))
		if g.hooks.OnValidation != nil {
			g.hooks.OnValidation(msg)
		}
		return []Recipe{}, nil
	}

	// 模擬處理時間，照樣尊重取消
	if g.config.Generation.Delay > 0 {
		select {
		case <-time.After(g.config.Generation.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	recipes := g.generate(ctx, in)

	// 不論來源，所有食譜統一走圖片解析
	for i := range recipes {
		recipes[i] = recipes[i].WithImage(g.images.Resolve(ctx, imagePrompt(recipes[i])))
	}

	common.LogInfo("食譜生成完成",
		zap.Int("count", len(recipes)),
		zap.String("meal_type", string(in.MealType)),
		zap.Int("time_energy_level", in.TimeEnergyLevel),
	)
	return recipes, nil
}

// generate 依序嘗試各個生成策略
func (g *Generator) generate(ctx context.Context, in Input) []Recipe {
	if g.config.OpenRouter.Enabled && g.ai != nil {
		recipes, err := g.generateWithAI(ctx, in)
		if err == nil {
			return recipes
		}
		common.LogFallback("text-generation", err, "")
		if g.hooks.OnFallback != nil {
			g.hooks.OnFallback("text-generation", err)
		}
	}

	if matches := Filter(g.catalog, in); len(matches) > 0 {
		return matches
	}

	return g.mock.Synthesize(in)
}

func (g *Generator) generateWithAI(ctx context.Context, in Input) ([]Recipe, error) {
	resp, err := g.ai.ProcessRequest(ctx, BuildPrompt(in))
	if err != nil {
		return nil, err
	}
	return g.mock.ParseAIRecipes(resp.Content, in)
}

// imagePrompt 為單一食譜組出圖片生成的 prompt
func imagePrompt(r Recipe) string {
	return "Professional food photography of " + r.Title + ". " + r.Description
}
