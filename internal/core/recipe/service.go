package recipe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"recipe-calorie/internal/core/scrape"
	"recipe-calorie/internal/pkg/common"
)

// ProgressFunc 每處理完一行食材就回呼一次
type ProgressFunc func(current, total int, line string)

// Service 整條估算流程：抓頁面、抽食譜、逐行估算、加總
type Service struct {
	fetcher   *scrape.Fetcher
	extractor *scrape.Extractor
	pipeline  *Pipeline
}

// NewService 創建食譜熱量服務
func NewService(fetcher *scrape.Fetcher, extractor *scrape.Extractor, pipeline *Pipeline) *Service {
	return &Service{fetcher: fetcher, extractor: extractor, pipeline: pipeline}
}

// Calculate 從 URL 估算整份食譜的熱量。
// progress 可為 nil；非 nil 時每行處理完都會被呼叫。
func (s *Service) Calculate(ctx context.Context, url string, progress ProgressFunc) (*RecipeResult, error) {
	start := time.Now()

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	data, err := s.extractor.Extract(html, url)
	if err != nil {
		return nil, err
	}

	common.LogInfo("食譜抽取完成",
		zap.String("title", data.Title),
		zap.Int("ingredients", len(data.Ingredients)),
	)

	result := &RecipeResult{
		Title:       data.Title,
		Servings:    data.Servings,
		Ingredients: make([]IngredientResult, 0, len(data.Ingredients)),
	}

	total := len(data.Ingredients)
	for i, line := range data.Ingredients {
		item, err := s.pipeline.Process(ctx, line)
		if err != nil {
			return nil, err
		}
		result.Ingredients = append(result.Ingredients, item)
		if item.TotalKcal != nil {
			result.TotalKcal += *item.TotalKcal
		}
		if progress != nil {
			progress(i+1, total, truncateLine(line, 60))
		}
	}

	result.TotalKcal = round1(result.TotalKcal)
	if result.Servings != nil && *result.Servings > 0 {
		per := round1(result.TotalKcal / float64(*result.Servings))
		result.PerServing = &per
	}

	common.LogInfo("熱量估算完成",
		zap.String("title", result.Title),
		zap.Float64("total_kcal", result.TotalKcal),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// CookResult 料理說明：食譜內容加上時間資訊
type CookResult struct {
	Title        string   `json:"title"`
	Servings     *int     `json:"servings,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     *int     `json:"prep_time,omitempty"`
	CookTime     *int     `json:"cook_time,omitempty"`
	TotalTime    *int     `json:"total_time,omitempty"`
}

// Cook 只抓食譜內容，不估熱量
func (s *Service) Cook(ctx context.Context, url string) (*CookResult, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	data, err := s.extractor.Extract(html, url)
	if err != nil {
		return nil, err
	}

	return &CookResult{
		Title:        data.Title,
		Servings:     data.Servings,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		PrepTime:     data.PrepTime,
		CookTime:     data.CookTime,
		TotalTime:    data.TotalTime,
	}, nil
}

func truncateLine(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
