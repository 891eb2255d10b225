package scrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recipe-calorie/internal/pkg/common"
)

// 第一層（嚴格模式）只信任這些確認過 JSON-LD 標記完整的網站。
// 其他網站走第二層的寬鬆模式，標記缺漏時再落到 DOM 啟發式。
var supportedHosts = map[string]bool{
	"www.allrecipes.com":      true,
	"allrecipes.com":          true,
	"www.bbcgoodfood.com":     true,
	"www.seriouseats.com":     true,
	"www.foodnetwork.com":     true,
	"www.bonappetit.com":      true,
	"www.epicurious.com":      true,
	"smittenkitchen.com":      true,
	"www.simplyrecipes.com":   true,
	"www.budgetbytes.com":     true,
	"www.kingarthurbaking.com": true,
	"cooking.nytimes.com":     true,
	"www.delish.com":          true,
	"www.food.com":            true,
}

var (
	servingsRe    = regexp.MustCompile(`(\d+)`)
	isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)
)

// extractSchema 從頁面的結構化標記（JSON-LD，退而求其次 microdata）
// 取出食譜資料。strict 模式只接受支援清單內的網站。
// 每個欄位各自嘗試，單一欄位缺漏不影響其他欄位。
func extractSchema(doc *goquery.Document, pageURL string, strict bool) *RecipeData {
	if strict {
		parsed, err := url.Parse(pageURL)
		if err != nil || !supportedHosts[strings.ToLower(parsed.Host)] {
			return nil
		}
	}

	if node := findRecipeNode(doc); node != nil {
		return recipeFromNode(node)
	}

	return recipeFromMicrodata(doc)
}

// findRecipeNode 在所有 JSON-LD 區塊中找 @type 含 Recipe 的節點，
// 容忍頂層陣列與 @graph 包裝。
func findRecipeNode(doc *goquery.Document) map[string]interface{} {
	var found map[string]interface{}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload interface{}
		if err := common.ParseJSON(s.Text(), &payload); err != nil {
			// 壞掉的 JSON-LD 很常見，跳過繼續找下一塊
			return true
		}
		if node := searchRecipe(payload); node != nil {
			found = node
			return false
		}
		return true
	})

	return found
}

func searchRecipe(v interface{}) map[string]interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		if isRecipeType(val["@type"]) {
			return val
		}
		if graph, ok := val["@graph"]; ok {
			return searchRecipe(graph)
		}
	case []interface{}:
		for _, item := range val {
			if node := searchRecipe(item); node != nil {
				return node
			}
		}
	}
	return nil
}

// isRecipeType @type 可能是字串或字串陣列
func isRecipeType(v interface{}) bool {
	switch val := v.(type) {
	case string:
		return strings.EqualFold(val, "Recipe")
	case []interface{}:
		for _, item := range val {
			if s, ok := item.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

// recipeFromNode 把 Recipe 節點轉成 RecipeData，欄位各自獨立取值
func recipeFromNode(node map[string]interface{}) *RecipeData {
	data := &RecipeData{
		Title:        common.AsString(node["name"]),
		Ingredients:  common.AsStringList(node["recipeIngredient"]),
		Instructions: instructionsFromNode(node["recipeInstructions"]),
		Servings:     ParseServings(common.AsString(node["recipeYield"])),
		PrepTime:     parseISODuration(common.AsString(node["prepTime"])),
		CookTime:     parseISODuration(common.AsString(node["cookTime"])),
		TotalTime:    parseISODuration(common.AsString(node["totalTime"])),
	}
	if len(data.Ingredients) == 0 {
		// 舊式拼法
		data.Ingredients = common.AsStringList(node["ingredients"])
	}
	return data
}

// instructionsFromNode 步驟欄位的形狀最亂：字串、字串陣列、
// HowToStep 物件陣列、HowToSection 巢狀都看得到，全部壓平成字串列表。
func instructionsFromNode(v interface{}) []string {
	var out []string
	switch val := v.(type) {
	case string:
		out = append(out, common.AsStringList(val)...)
	case []interface{}:
		for _, item := range val {
			switch step := item.(type) {
			case string:
				if s := strings.TrimSpace(step); s != "" {
					out = append(out, s)
				}
			case map[string]interface{}:
				if nested, ok := step["itemListElement"]; ok {
					out = append(out, instructionsFromNode(nested)...)
					continue
				}
				if s := common.AsString(step["text"]); s != "" {
					out = append(out, s)
				} else if s := common.AsString(step["name"]); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// recipeFromMicrodata schema.org microdata 的保底解析
func recipeFromMicrodata(doc *goquery.Document) *RecipeData {
	scope := doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return nil
	}

	data := &RecipeData{}
	data.Title = strings.TrimSpace(scope.Find(`[itemprop="name"]`).First().Text())
	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if text := normalizeSpace(s.Text()); text != "" {
			data.Ingredients = append(data.Ingredients, text)
		}
	})
	scope.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		if text := normalizeSpace(s.Text()); text != "" {
			data.Instructions = append(data.Instructions, text)
		}
	})
	data.Servings = ParseServings(normalizeSpace(scope.Find(`[itemprop="recipeYield"]`).First().Text()))
	return data
}

// ParseServings 從 "makes 24 servings" 之類的字串取出份數
func ParseServings(yields string) *int {
	if yields == "" {
		return nil
	}
	m := servingsRe.FindString(yields)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// parseISODuration 把 schema.org 的 ISO-8601 時長（"PT1H30M"）轉成分鐘數
func parseISODuration(s string) *int {
	if s == "" {
		return nil
	}
	m := isoDurationRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return nil
	}
	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[4]))

	total := days*24*60 + hours*60 + minutes + seconds/60
	if total <= 0 {
		return nil
	}
	return &total
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
