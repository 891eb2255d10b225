package nutrition

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// knownKcalPer100g 內建的每 100 公克熱量表。
// 收錄 USDA 文字搜尋常配錯的食材：查 "salt" 會回 "Butter, salted"
// 之類的誤配，鹽、水這些零熱量品項寧可寫死也不要靠搜尋。
// 名稱在表裡時一律以內建值為準，不打 USDA。
var knownKcalPer100g = map[string]float64{
	"salt":        0,
	"sea salt":    0,
	"kosher salt": 0,
	"table salt":  0,
	"water":       0,
	"ice":         0,
	"black pepper":    251,
	"red pepper":      31,
	"green pepper":    20,
	"cayenne pepper":  318,
	"chili pepper":    40,
	"jalapeno pepper": 29,
	"vanilla extract": 288,
	"vanilla":         288,
	"baking soda":     0,
	"baking powder":   53,
	"nutmeg":          525,
	"cinnamon":        247,
	"garlic":          149,
	"ginger":          80,
	"butter":          717,
	"unsalted butter": 717,
	"salted butter":   717,
	"egg":             155,
	"eggs":            155,
	"lemon juice":     22,
	"lime juice":      25,
	"soy sauce":       53,
	"vinegar":         18,
	"apple cider vinegar":  22,
	"worcestershire sauce": 78,
	"carrot":       41,
	"carrots":      41,
	"celery":       14,
	"onion":        40,
	"potato":       77,
	"potatoes":     77,
	"sweet potato": 86,
	"tomato":       18,
	"tomatoes":     18,
	"bell pepper":  31,
	"bell peppers": 31,
	"broccoli":     34,
	"spinach":      23,
	"zucchini":     17,
	"cucumber":     15,
	"mushroom":     22,
	"mushrooms":    22,
	"cabbage":      25,
	"cauliflower":  25,
	"green beans":  31,
	"peas":         81,
	"corn":         86,
	"rice":         130,
	"white rice":   130,
	"brown rice":   112,
	"pasta":        131,
	"chicken breast": 165,
	"chicken thigh":  209,
	"chicken":        239,
	"ground beef":    254,
	"salmon":         208,
	"shrimp":         99,
	"tofu":           76,
	"chickpeas":      164,
	"black beans":    132,
	"lentils":        116,
	"black lentils":  116,
	"chicken broth":   4,
	"chicken stock":   7,
	"beef broth":      7,
	"beef stock":      13,
	"vegetable broth": 3,
	"vegetable stock": 5,
	"broth":           5, // 通用高湯保底
	"bone broth":      13,
	"coconut milk":  230,
	"cream cheese":  342,
	"sour cream":    198,
	"heavy cream":   340,
	"whipped cream": 257,
	"olive oil":     884,
	"vegetable oil": 884,
	"coconut oil":   862,
	"sesame oil":    884,
	"flour":             364,
	"all-purpose flour": 364,
	"whole wheat flour": 340,
	"bread flour":       361,
	"sugar":          387,
	"brown sugar":    380,
	"powdered sugar": 389,
	"honey":          304,
	"maple syrup":    260,
	"oats":           389,
	"cocoa powder":   228,
	"cornstarch":     381,
	"corn starch":    381,
	"bay leaf":       313,
	"bay leaves":     313,
	"peppercorn":     251,
	"peppercorns":    251,
	"pork":          242,
	"pork shoulder": 216,
	"pork belly":    518,
	"short ribs":    295,
	"coriander":     23, // 新鮮葉（香菜），USDA
	"cilantro":      23,
	"pappardelle":   371, // 乾義大利麵
	"papardelle":    371, // 常見錯拼
	"ras el hanout": 285, // 摩洛哥綜合香料，約略值
	"ground ginger": 335,
	"pancetta":      393,
	"swiss chard":   19,
	"chard":         19,
	"white beans":      114, // 煮熟/罐頭
	"cannellini beans": 114,
	"puff pastry":      558, // 冷凍即烤
	"pie dough":        366,
	"pie crust":        366,
}

var (
	knownMatcherMu sync.Mutex
	knownMatchers  = map[string]*regexp.Regexp{}
)

func knownMatcher(key string) *regexp.Regexp {
	knownMatcherMu.Lock()
	defer knownMatcherMu.Unlock()
	if re, ok := knownMatchers[key]; ok {
		return re
	}
	// 容忍常見複數："carrot" 也要命中 "carrots"
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `(?:e?s)?\b`)
	knownMatchers[key] = re
	return re
}

// LookupKnown 查內建熱量表：先試完整名稱，再取最長的 word-boundary 命中鍵。
func LookupKnown(name string) (kcal float64, description string, ok bool) {
	nameLower := strings.TrimSpace(strings.ToLower(name))

	if kcal, found := knownKcalPer100g[nameLower]; found {
		return kcal, fmt.Sprintf("%s (built-in value)", name), true
	}

	bestKey := ""
	for key := range knownKcalPer100g {
		if len(key) <= len(bestKey) {
			continue
		}
		if knownMatcher(key).MatchString(nameLower) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return 0, "", false
	}
	return knownKcalPer100g[bestKey], fmt.Sprintf("%s (built-in value)", bestKey), true
}
