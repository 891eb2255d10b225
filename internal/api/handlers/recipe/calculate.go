package recipe

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"recipe-calorie/internal/core/nutrition"
	recipeService "recipe-calorie/internal/core/recipe"
	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CalculateRequest 估算整份食譜熱量
type CalculateRequest struct {
	URL string `json:"url" binding:"required"` // 食譜頁面網址
}

// Handler 食譜熱量處理程序
type Handler struct {
	service *recipeService.Service
	config  *config.Config
}

// NewHandler 創建處理程序
func NewHandler(service *recipeService.Service, cfg *config.Config) *Handler {
	return &Handler{service: service, config: cfg}
}

// Calculate 處理熱量估算請求
func (h *Handler) Calculate(c *gin.Context) {
	requestID := uuid.New().String()
	startTime := time.Now()

	common.LogInfo("收到熱量估算請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req CalculateRequest
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

	// 金鑰沒設直接擋下，不要打到 USDA 才發現
	if h.config.USDA.APIKey == "" {
		common.LogError("USDA API 金鑰未設定",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": common.ErrMissingAPIKey.Error(),
			"code":  common.ErrCodeMissingAPIKey,
		})
		return
	}

	result, err := h.service.Calculate(c.Request.Context(), req.URL, nil)
	if err != nil {
		h.respondError(c, requestID, err)
		return
	}

	common.LogInfo("熱量估算請求完成",
		zap.String("request_id", requestID),
		zap.String("title", result.Title),
		zap.Float64("total_kcal", result.TotalKcal),
		zap.Duration("duration", time.Since(startTime)),
	)

	c.JSON(http.StatusOK, result)
}

// respondError 把 pipeline 的錯誤轉成對應的 HTTP 狀態
func (h *Handler) respondError(c *gin.Context, requestID string, err error) {
	common.LogError("熱量估算失敗",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		body := gin.H{
			"error": customErr.Message,
			"code":  customErr.Code,
		}
		if customErr.Code == common.ErrCodeSiteBlocked {
			body["blocked"] = true
		}
		c.JSON(customErr.Status, body)
		return
	}

	if errors.Is(err, nutrition.ErrInvalidAPIKey) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "USDA API key was rejected. Check the USDA_API_KEY value.",
			"code":  common.ErrCodeInvalidAPIKey,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  "INTERNAL_ERROR",
	})
}

// isValidURL 只收 http/https 開頭的網址
func isValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
