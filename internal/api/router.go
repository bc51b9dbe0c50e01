package api

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	healthHandler "recipe-ideas/internal/api/handlers/health"
	imagekeyHandler "recipe-ideas/internal/api/handlers/imagekey"
	recipeHandler "recipe-ideas/internal/api/handlers/recipe"
	speechHandler "recipe-ideas/internal/api/handlers/speech"
	"recipe-ideas/internal/api/middleware"
	"recipe-ideas/internal/core/ai/cache"
	"recipe-ideas/internal/core/ai/openrouter"
	aiService "recipe-ideas/internal/core/ai/service"
	"recipe-ideas/internal/core/image"
	recipeCore "recipe-ideas/internal/core/recipe"
	speechCore "recipe-ideas/internal/core/speech"
	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，純文字 API 用不到更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由與所有服務
func SetupRouter(cfg *config.Config, cacheManager cache.Cache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-Speech-Engine"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化服務
	var textSvc recipeCore.TextService
	if cfg.OpenRouter.Enabled {
		textSvc = aiService.NewService(cfg, openrouter.NewClient(cfg), cacheManager)
	}

	credStore, err := image.NewCredentialStore(cfg.ImageGen.KeyFile)
	if err != nil {
		common.LogError("Failed to initialize credential store", zap.Error(err))
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	resolver := image.NewResolver(image.NewRunwareClient(cfg), credStore, rng)
	mock := recipeCore.NewMockSynthesizer(rand.New(rand.NewSource(time.Now().UnixNano())))

	generator := recipeCore.NewGenerator(cfg, textSvc, resolver, mock, recipeCore.Hooks{})

	// 語音合成鏈：ElevenLabs 優先，退回本地引擎
	var primary speechCore.Synthesizer
	if e := speechCore.NewElevenLabsEngine(cfg); e != nil {
		primary = e
	}
	synthesizer := speechCore.NewChain(primary, speechCore.NewLocalEngine(cfg.Speech.LocalCommand))

	common.LogInfo("Services initialized",
		zap.Bool("ai_enabled", cfg.OpenRouter.Enabled),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("image_key_configured", credStore.Configured()),
		zap.String("speech_engine", synthesizer.Name()),
	)

	// 全局中間件：設置超時與配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		if cacheManager != nil {
			c.Set("cache", cacheManager)
		}

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
		}
	})

	// 健康檢查路由
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipeHandlerInstance := recipeHandler.NewHandler(generator)
		api.POST("/recipes/generate", recipeHandlerInstance.HandleGenerate)

		speechHandlerInstance := speechHandler.NewHandler(synthesizer)
		api.POST("/speech", speechHandlerInstance.HandleSynthesize)

		imagekeyHandlerInstance := imagekeyHandler.NewHandler(credStore)
		configGroup := api.Group("/config")
		{
			configGroup.PUT("/image-key", imagekeyHandlerInstance.HandleSet)
			configGroup.DELETE("/image-key", imagekeyHandlerInstance.HandleClear)
			configGroup.GET("/image-key", imagekeyHandlerInstance.HandleStatus)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
