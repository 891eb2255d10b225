package recipe

// 每行食材的終態
const (
	StatusOK       = "ok"
	StatusSkipped  = "skipped"
	StatusNotFound = "not found"
)

// IngredientResult 單行食材的估算結果。
// 指標欄位為 nil 表示該值算不出來（skipped / not found）。
type IngredientResult struct {
	Raw         string   `json:"raw"`
	Name        string   `json:"name"`
	Grams       *float64 `json:"grams,omitempty"`
	KcalPer100g *float64 `json:"kcal_per_100g,omitempty"`
	TotalKcal   *float64 `json:"total_kcal,omitempty"`
	USDAMatch   string   `json:"usda_match,omitempty"`
	Status      string   `json:"status"`
	Note        string   `json:"note,omitempty"`
}

// RecipeResult 整份食譜的估算結果
type RecipeResult struct {
	Title       string             `json:"title"`
	Servings    *int               `json:"servings,omitempty"`
	TotalKcal   float64            `json:"total_kcal"`
	PerServing  *float64           `json:"per_serving,omitempty"`
	Ingredients []IngredientResult `json:"ingredients"`
}
