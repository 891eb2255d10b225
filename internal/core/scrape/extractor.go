package scrape

import (
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recipe-calorie/internal/pkg/common"
)

// RecipeData 抽取出的食譜內容，欄位抽不到就留零值
type RecipeData struct {
	Title        string   `json:"title"`
	Servings     *int     `json:"servings,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     *int     `json:"prep_time,omitempty"`
	CookTime     *int     `json:"cook_time,omitempty"`
	TotalTime    *int     `json:"total_time,omitempty"`
}

// Extractor 把 HTML 轉成 RecipeData：
// 先在支援清單內找結構化標記，再放寬到任何結構化標記，
// 最後用 DOM 啟發式補上還缺的欄位。
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(htmlContent, pageURL string) (*RecipeData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &common.CustomError{
			Code:    common.ErrCodeEmptyRecipe,
			Message: "Failed to parse page HTML.",
			Err:     err,
			Status:  http.StatusUnprocessableEntity,
		}
	}

	data := extractSchema(doc, pageURL, true)
	if data == nil {
		data = extractSchema(doc, pageURL, false)
	}
	if data == nil {
		data = &RecipeData{}
	}

	// 啟發式只補缺的欄位，不覆蓋結構化標記已有的值
	fillMissing(data, extractFallback(doc))

	if len(data.Ingredients) == 0 && len(data.Instructions) == 0 {
		return nil, &common.CustomError{
			Code:    common.ErrCodeEmptyRecipe,
			Message: "No ingredients or instructions found for this recipe.",
			Status:  http.StatusUnprocessableEntity,
		}
	}
	return data, nil
}

func fillMissing(dst, fb *RecipeData) {
	if dst.Title == "" {
		dst.Title = fb.Title
	}
	if len(dst.Ingredients) == 0 {
		dst.Ingredients = fb.Ingredients
	}
	if len(dst.Instructions) == 0 {
		dst.Instructions = fb.Instructions
	}
	if dst.Servings == nil {
		dst.Servings = fb.Servings
	}
}
