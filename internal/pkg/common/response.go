package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// AbortWithError 依 CustomError 寫出 JSON 錯誤響應並中止請求
// 非 CustomError 一律視為內部錯誤，避免把原始錯誤細節洩漏給呼叫端
func AbortWithError(c *gin.Context, err error) {
	var ce *CustomError
	if !errors.As(err, &ce) {
		ce = ErrInternalError
	}
	c.AbortWithStatusJSON(ce.Status, ErrorResponse{
		Code:    ce.Code,
		Message: ce.Message,
	})
}
