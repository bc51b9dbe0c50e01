package speech

import (
	"errors"
	"net/http"

	recipeCore "recipe-ideas/internal/core/recipe"
	speechCore "recipe-ideas/internal/core/speech"
	"recipe-ideas/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SynthesizeRequest 語音合成請求
// text 與 recipe 擇一，recipe 會先經過朗讀稿轉換
type SynthesizeRequest struct {
	Text   string             `json:"text,omitempty"`
	Recipe *recipeCore.Recipe `json:"recipe,omitempty"`
}

// Handler 語音處理程序
type Handler struct {
	synthesizer speechCore.Synthesizer
}

// NewHandler 創建語音處理程序
func NewHandler(synthesizer speechCore.Synthesizer) *Handler {
	return &Handler{synthesizer: synthesizer}
}

// HandleSynthesize 合成語音並以 WAV 回傳
func (h *Handler) HandleSynthesize(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")

	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.AbortWithError(c, common.NewError(common.ErrCodeValidationError,
			"invalid request body", http.StatusBadRequest, err))
		return
	}

	text := req.Text
	if text == "" && req.Recipe != nil {
		text = speechCore.RecipeScript(*req.Recipe)
	}
	if text == "" {
		common.AbortWithError(c, common.NewError(common.ErrCodeValidationError,
			"either text or recipe is required", http.StatusBadRequest, nil))
		return
	}

	clip, err := h.synthesizer.Synthesize(c.Request.Context(), text)
	if err != nil {
		common.LogError("語音合成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		var ce *common.CustomError
		if errors.As(err, &ce) && ce.Code == common.ErrCodePlatformUnsupported {
			common.AbortWithError(c, err)
			return
		}
		common.AbortWithError(c, common.ErrUpstreamUnavailable)
		return
	}

	c.Header("X-Speech-Engine", clip.Engine)
	c.Data(http.StatusOK, "audio/wav", speechCore.EncodeWAV(clip.PCM, clip.SampleRate, clip.Channels))
}
