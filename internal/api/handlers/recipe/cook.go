package recipe

import (
	"net/http"
	"time"

	"recipe-calorie/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookRequest 取得食譜內容（不估熱量）
type CookRequest struct {
	URL string `json:"url" binding:"required"` // 食譜頁面網址
}

// Cook 處理食譜內容請求
func (h *Handler) Cook(c *gin.Context) {
	requestID := uuid.New().String()
	startTime := time.Now()

	var req CookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式錯誤",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	if !isValidURL(req.URL) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "URL must start with http:// or https://",
			"code":  common.ErrCodeInvalidURL,
		})
		return
	}

	result, err := h.service.Cook(c.Request.Context(), req.URL)
	if err != nil {
		h.respondError(c, requestID, err)
		return
	}

	common.LogInfo("食譜內容請求完成",
		zap.String("request_id", requestID),
		zap.String("title", result.Title),
		zap.Int("ingredients", len(result.Ingredients)),
		zap.Duration("duration", time.Since(startTime)),
	)

	c.JSON(http.StatusOK, result)
}
