package units

import (
	"regexp"
	"sync"
)

// densityGPerCup 常見食材每一美制杯的公克數（容量 → 重量換算用）
var densityGPerCup = map[string]float64{
	"flour":               120,
	"all-purpose flour":   120,
	"all purpose flour":   120,
	"bread flour":         127,
	"whole wheat flour":   120,
	"cake flour":          114,
	"sugar":               200,
	"granulated sugar":    200,
	"brown sugar":         220,
	"powdered sugar":      120,
	"confectioners sugar": 120,
	"butter":              227,
	"oil":                 218,
	"olive oil":           216,
	"vegetable oil":       218,
	"canola oil":          218,
	"coconut oil":         218,
	"water":               237,
	"milk":                244,
	"whole milk":          244,
	"skim milk":           245,
	"buttermilk":          245,
	"heavy cream":         238,
	"sour cream":          230,
	"yogurt":              245,
	"cream cheese":        232,
	"oats":                90,
	"rolled oats":         90,
	"cocoa powder":        85,
	"cocoa":               85,
	"breadcrumbs":         108,
	"rice":                185,
	"white rice":          185,
	"brown rice":          190,
	"honey":               340,
	"maple syrup":         312,
	"corn syrup":          328,
	"molasses":            328,
	"peanut butter":       258,
	"almond flour":        96,
	"cornstarch":          128,
	"corn starch":         128,
	"cornmeal":            156,
	"salt":                288,
	"baking powder":       230,
	"baking soda":         230,
	"chocolate chips":     168,
	"raisins":             145,
	"walnuts":             120,
	"pecans":              109,
	"almonds":             143,
	"shredded coconut":    85,
	"parmesan cheese":     100,
	"cheddar cheese":      113,
	"mozzarella cheese":   113,
	"ricotta cheese":      246,
	"mayonnaise":          220,
	"ketchup":             240,
	"soy sauce":           255,
	"vinegar":             239,
	"lemon juice":         244,
	"tomato sauce":        245,
	"tomato paste":        262,
	"applesauce":          244,
	"pumpkin puree":       245,
	"coconut milk":        226,
	"coconut cream":       240,
	"tahini":              240,
	"miso paste":          275,
	"hot sauce":           240,
	"barbecue sauce":      280,
}

// ItemWeight 計數型食材的每件重量。BySize 依大小細分，查不到時用 Default。
type ItemWeight struct {
	Default float64
	BySize  map[string]float64
}

// weightPerItem 計數型食材的平均單件公克數，數值取自 USDA 標準參考重量
var weightPerItem = map[string]ItemWeight{
	"egg":  {Default: 50, BySize: map[string]float64{"small": 40, "medium": 44, "large": 50, "extra-large": 56}},
	"eggs": {Default: 50, BySize: map[string]float64{"small": 40, "medium": 44, "large": 50, "extra-large": 56}},
	"onion": {Default: 150, BySize: map[string]float64{"small": 110, "medium": 150, "large": 285}},
	"garlic":  {Default: 3}, // 每瓣
	"ginger":  {Default: 6}, // 每吋
	"shallot": {Default: 30},
	"carrot":  {Default: 61, BySize: map[string]float64{"small": 50, "medium": 61, "large": 72}},
	"celery":  {Default: 40}, // 每根
	"potato":  {Default: 213, BySize: map[string]float64{"small": 170, "medium": 213, "large": 369}},
	"sweet potato": {Default: 114, BySize: map[string]float64{"small": 60, "medium": 114, "large": 180}},
	"tomato":       {Default: 123, BySize: map[string]float64{"small": 91, "medium": 123, "large": 182}},
	"bell pepper":  {Default: 119},
	"bell peppers": {Default: 119},
	"jalapeno":        {Default: 14},
	"jalapeno pepper": {Default: 14},
	"serrano pepper":  {Default: 6},
	"banana": {Default: 118, BySize: map[string]float64{"small": 101, "medium": 118, "large": 136}},
	"apple":  {Default: 182, BySize: map[string]float64{"small": 149, "medium": 182, "large": 223}},
	"lemon":  {Default: 58},
	"lime":   {Default: 44},
	"orange": {Default: 131, BySize: map[string]float64{"small": 96, "medium": 131, "large": 184}},
	"avocado":  {Default: 150},
	"cucumber": {Default: 201},
	"zucchini": {Default: 196, BySize: map[string]float64{"small": 113, "medium": 196, "large": 323}},
	"green onion":  {Default: 15},
	"green onions": {Default: 15},
	"scallion":     {Default: 15},
	"scallions":    {Default: 15},
	"cilantro":   {Default: 5}, // 每把
	"parsley":    {Default: 5},
	"basil":      {Default: 3}, // 每枝
	"bay leaf":   {Default: 1},
	"bay leaves": {Default: 1},
	"chicken breast":    {Default: 174}, // 去骨去皮半胸
	"chicken thigh":     {Default: 113},
	"chicken drumstick": {Default: 95},
	"chicken wing":      {Default: 49},
	"chicken leg":       {Default: 264}, // 帶骨帶皮整腿
	"bread":    {Default: 30}, // 每片
	"tortilla": {Default: 45},
}

var (
	matcherMu sync.Mutex
	matchers  = map[string]*regexp.Regexp{}
)

// keyMatcher 取得表鍵的 word-boundary 匹配器（lazy 編譯 + 快取）。
// 容忍常見複數："onion" 也要命中 "onions"、"tomatoes"。
func keyMatcher(key string) *regexp.Regexp {
	matcherMu.Lock()
	defer matcherMu.Unlock()
	if re, ok := matchers[key]; ok {
		return re
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `(?:e?s)?\b`)
	matchers[key] = re
	return re
}

// longestKeyMatch 在食材名稱中找最長的表鍵。
// 用 word-boundary 匹配並取最長鍵，"salted butter" 才會命中 "butter"
// 而不是 "salt"，"rice flour" 命中 "flour" 而不是 "rice"。
func longestKeyMatch(name string, keys func(f func(key string))) (string, bool) {
	best := ""
	keys(func(key string) {
		if len(key) <= len(best) {
			return
		}
		if keyMatcher(key).MatchString(name) {
			best = key
		}
	})
	return best, best != ""
}

// LookupDensity 查食材密度，回傳 g/mL
func LookupDensity(ingredientName string) (float64, bool) {
	name := toLower(ingredientName)
	key, ok := longestKeyMatch(name, func(f func(string)) {
		for k := range densityGPerCup {
			f(k)
		}
	})
	if !ok {
		return 0, false
	}
	return densityGPerCup[key] / MLPerCup, true
}

// LookupItemWeight 查計數型食材的單件公克數。size 可為空。
func LookupItemWeight(ingredientName, size string) (float64, bool) {
	name := toLower(ingredientName)
	key, ok := longestKeyMatch(name, func(f func(string)) {
		for k := range weightPerItem {
			f(k)
		}
	})
	if !ok {
		return 0, false
	}
	entry := weightPerItem[key]
	if size != "" {
		if grams, ok := entry.BySize[size]; ok {
			return grams, true
		}
	}
	return entry.Default, true
}
