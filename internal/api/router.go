package api

import (
	"context"
	"net/http"
	"time"

	"recipe-calorie/internal/api/handlers/health"
	recipeHandler "recipe-calorie/internal/api/handlers/recipe"
	"recipe-calorie/internal/api/middleware"
	"recipe-calorie/internal/core/cache"
	"recipe-calorie/internal/core/ingredient"
	"recipe-calorie/internal/core/nutrition"
	recipeService "recipe-calorie/internal/core/recipe"
	"recipe-calorie/internal/core/scrape"
	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置（抓頁面加逐行查 USDA 會久）
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (64KB，請求只帶一個 URL)
	maxBodySize = 64 << 10
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與重複請求防護
	if cfg.RateLimit.Requests > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("tagger_remote", cfg.Tagger.URL != ""),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化抓取與抽取
	fetcher := scrape.NewFetcher(&cfg.Fetch)
	extractor := scrape.NewExtractor()

	// 斷詞：有設定遠端服務就用，否則用內建規則
	var tagger ingredient.Tagger
	if cfg.Tagger.URL != "" {
		tagger = ingredient.NewHTTPTagger(cfg.Tagger.URL, cfg.Tagger.Timeout)
	} else {
		tagger = ingredient.NewRuleTagger()
	}
	parser := ingredient.NewParser(tagger)

	// 初始化熱量查詢
	usdaClient := nutrition.NewClient(&cfg.USDA)
	resolver := nutrition.NewResolver(usdaClient, store)

	pipeline := recipeService.NewPipeline(parser, resolver)
	svc := recipeService.NewService(fetcher, extractor, pipeline)

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(svc, cfg)

		recipeGroup := api.Group("/recipe")
		{
			// 估算整份食譜熱量
			recipeGroup.POST("/calculate", handler.Calculate)

			// 取得食譜內容
			recipeGroup.POST("/cook", handler.Cook)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_initialized", store != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
