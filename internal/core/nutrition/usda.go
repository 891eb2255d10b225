package nutrition

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

// 不同資料型別把熱量記在不同的營養編號底下：
// 208 = SR Legacy，957/958 = Foundation（Atwater 係數）
var energyNutrientNumbers = map[string]bool{"208": true, "957": true, "958": true}

// ErrInvalidAPIKey 金鑰無效時整個請求是不可用的，往上拋
var ErrInvalidAPIKey = errors.New("invalid USDA API key")

// Estimate 一個食材的熱量解析結果
type Estimate struct {
	KcalPer100g float64 `json:"kcal_per_100g"`
	Description string  `json:"description"`
}

// Client USDA FoodData Central 客戶端
type Client struct {
	client *resty.Client
	config *config.USDAConfig
}

// food USDA 搜尋結果的單筆食物
type food struct {
	Description   string         `json:"description"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

// foodNutrient 營養條目
type foodNutrient struct {
	NutrientNumber string  `json:"nutrientNumber"`
	UnitName       string  `json:"unitName"`
	Value          float64 `json:"value"`
}

// searchResponse 搜尋響應
type searchResponse struct {
	Foods []food `json:"foods"`
}

// NewClient 創建 USDA 客戶端
func NewClient(cfg *config.USDAConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &Client{
		client: client,
		config: cfg,
	}
}

// Search 以清理過的名稱搜尋熱量。
// 回傳三態：(estimate, "", nil) 成功；(nil, reason, nil) 軟失敗，
// 該食材標成 not found 但食譜繼續算；err 只在金鑰無效時非 nil。
func (c *Client) Search(ctx context.Context, query string) (*Estimate, string, error) {
	start := time.Now()

	var result searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":  c.config.APIKey,
			"query":    query,
			"dataType": c.config.DataTypes,
			"pageSize": strconv.Itoa(c.config.PageSize),
		}).
		SetResult(&result).
		Get("/foods/search")

	common.LogLookup(query, time.Since(start), err, "")

	if err != nil {
		// 連線或逾時問題只影響這個食材，不中斷整份食譜
		return nil, fmt.Sprintf("USDA API unreachable: %v", err), nil
	}

	switch {
	case resp.StatusCode() == http.StatusForbidden:
		return nil, "", ErrInvalidAPIKey
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, "USDA API rate limit reached (1000/hour). Try again later.", nil
	case resp.StatusCode() == http.StatusBadRequest:
		return nil, "USDA search failed (bad query)", nil
	case resp.StatusCode() != http.StatusOK:
		return nil, fmt.Sprintf("USDA API error (HTTP %d)", resp.StatusCode()), nil
	}

	if len(result.Foods) == 0 {
		return nil, "not found in USDA database", nil
	}

	// 逐筆掃描找有熱量資料的結果，第一筆不一定有
	for _, f := range result.Foods {
		if kcal, ok := extractEnergyKcal(f); ok {
			common.LogDebug("USDA 命中",
				zap.String("query", query),
				zap.String("match", f.Description),
				zap.Float64("kcal_per_100g", kcal),
			)
			return &Estimate{KcalPer100g: kcal, Description: f.Description}, "", nil
		}
	}

	return nil, "energy data missing from USDA result", nil
}

// extractEnergyKcal 從一筆食物結果取出 kcal 熱量值
func extractEnergyKcal(f food) (float64, bool) {
	for _, nutrient := range f.FoodNutrients {
		if energyNutrientNumbers[nutrient.NutrientNumber] && strings.ToUpper(nutrient.UnitName) == "KCAL" {
			return nutrient.Value, true
		}
	}
	return 0, false
}
