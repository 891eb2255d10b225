// Package nutrition 解析每 100 公克熱量：先查內建表，再查 USDA FoodData Central。
package nutrition

import (
	"regexp"
	"strings"
)

// USDA 的文字搜尋是逐字比對，食譜慣用語會干擾結果，查詢前先拿掉
var nameSplitters = []string{" or ", " for ", " plus more", ", plus "}

// 會混淆搜尋的形容詞與狀態詞，依序以 word-boundary 移除。
// 多詞片語放在單詞之前，"room temperature" 要先於其他詞處理。
var removeWords = []string{
	"cold", "warm", "hot", "at room temperature", "room temperature",
	"freshly", "fresh", "well-shaken", "well shaken",
	"finely", "fine", "coarsely", "roughly", "thinly",
	"unsalted", "salted", "softened", "melted", "frozen", "thawed",
	"unbleached", "bleached", "sifted", "packed",
	"large", "medium", "small", "extra-large",
	"grated", "shredded", "chopped", "diced", "minced", "sliced",
	"low-sodium", "sodium-free", "no-salt-added",
	"low-fat", "reduced-fat", "full-fat", "nonfat", "fat-free",
	"organic", "boneless", "skinless",
}

var (
	removeWordRes = buildRemoveWordRes()
	cleanSpaceRe  = regexp.MustCompile(`\s+`)
)

func buildRemoveWordRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(removeWords))
	for _, w := range removeWords {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return res
}

// CleanName 清理食材名稱供搜尋使用。
// 只留第一個子句（"milk or cream" → "milk"），移除形容詞，收斂空白。
func CleanName(name string) string {
	cleaned := strings.ToLower(name)

	for _, splitter := range nameSplitters {
		if idx := strings.Index(cleaned, splitter); idx >= 0 {
			cleaned = cleaned[:idx]
		}
	}

	for _, re := range removeWordRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = cleanSpaceRe.ReplaceAllString(cleaned, " ")
	return strings.Trim(cleaned, " ,")
}
