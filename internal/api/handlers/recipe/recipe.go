package recipe

import (
	"net/http"

	recipeCore "recipe-ideas/internal/core/recipe"
	"recipe-ideas/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateRequest 食譜生成請求
type GenerateRequest struct {
	Ingredients         []string `json:"ingredients"`                    // 可用食材，空清單由 Validate 擋下
	ExcludedIngredients []string `json:"excluded_ingredients,omitempty"` // 不想使用的食材
	MealType            string   `json:"meal_type,omitempty"`            // breakfast | lunch | dinner | dessert | snack | any
	NutrientPreferences []string `json:"nutrient_preferences,omitempty"` // 想強調的營養素
	TimeEnergyLevel     *int     `json:"time_energy_level,omitempty"`    // 0-100，省略時取預設值
}

// GenerateResponse 食譜生成響應
type GenerateResponse struct {
	Recipes []recipeCore.Recipe `json:"recipes"`
	Count   int                 `json:"count"`
}

// Handler 食譜處理程序
type Handler struct {
	generator *recipeCore.Generator
}

// NewHandler 創建食譜處理程序
func NewHandler(generator *recipeCore.Generator) *Handler {
	return &Handler{generator: generator}
}

// HandleGenerate 依食材與偏好生成食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式錯誤",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.AbortWithError(c, common.NewError(common.ErrCodeInvalidRequest,
			"Invalid request body", http.StatusBadRequest, err))
		return
	}

	in := recipeCore.Input{
		Ingredients:         req.Ingredients,
		ExcludedIngredients: req.ExcludedIngredients,
		MealType:            recipeCore.MealType(req.MealType),
		NutrientPreferences: req.NutrientPreferences,
		TimeEnergyLevel:     recipeCore.DefaultTimeEnergyLevel,
	}
	if req.TimeEnergyLevel != nil {
		in.TimeEnergyLevel = *req.TimeEnergyLevel
	}
	in.Normalize()

	if err := in.Validate(); err != nil {
		common.LogWarn("輸入驗證失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.AbortWithError(c, common.NewError(common.ErrCodeValidationError,
			err.Error(), http.StatusBadRequest, err))
		return
	}

	recipes, err := h.generator.Generate(c.Request.Context(), in)
	if err != nil {
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.AbortWithError(c, common.ErrInternalError)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Recipes: recipes,
		Count:   len(recipes),
	})
}
