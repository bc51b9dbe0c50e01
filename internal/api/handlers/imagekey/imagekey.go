package imagekey

import (
	"net/http"

	"recipe-ideas/internal/core/image"
	"recipe-ideas/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetKeyRequest 設定圖片生成金鑰
type SetKeyRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// Handler 圖片金鑰處理程序
type Handler struct {
	store *image.CredentialStore
}

// NewHandler 創建圖片金鑰處理程序
func NewHandler(store *image.CredentialStore) *Handler {
	return &Handler{store: store}
}

// HandleSet 保存金鑰
func (h *Handler) HandleSet(c *gin.Context) {
	var req SetKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.AbortWithError(c, common.NewError(common.ErrCodeValidationError,
			"api_key is required", http.StatusBadRequest, err))
		return
	}

	if err := h.store.Set(req.APIKey); err != nil {
		if common.IsValidationError(err) {
			common.AbortWithError(c, common.NewError(common.ErrCodeValidationError,
				err.Error(), http.StatusBadRequest, err))
			return
		}
		common.LogError("圖片金鑰保存失敗", zap.Error(err))
		common.AbortWithError(c, common.ErrInternalError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configured": true})
}

// HandleClear 移除金鑰，金鑰本來就不存在也回報成功
func (h *Handler) HandleClear(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		common.LogError("圖片金鑰移除失敗", zap.Error(err))
		common.AbortWithError(c, common.ErrInternalError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": false})
}

// HandleStatus 回報是否已設定金鑰，絕不回傳金鑰本身
func (h *Handler) HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configured": h.store.Configured()})
}
