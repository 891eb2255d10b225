// Package ingredient 把抓下來的食材文字整理成結構化的 (數量, 單位, 名稱)。
package ingredient

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hyphenBreakRe = regexp.MustCompile(`(\w)- (\w)`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)

	// 括號內的單位換算註記，例如 "(115 grams or 3/4 cup)"，是重複資訊直接拿掉
	parenConversionRe = regexp.MustCompile(`(?i)\s*\([^)]*(?:grams?|oz|ounces?|cups?|ml|liters?|litres?|lbs?|pounds?|kg|inch|inches|cm)\b[^)]*\)`)

	// "2 x 400g cans ..." 之類的包裝寫法，乘開成單一重量
	multipackRe = regexp.MustCompile(`(?i)^(\d+)\s*x\s*(\d+)\s*(g|kg|oz|lbs?|ml|l)\b\s*(?:cans?|tins?|bags?|box(?:es)?|packets?|packages?|jars?|bottles?|cartons?|pouch(?:es)?)?\s*(.*)$`)

	// "1 extra-large (about 2 1/2 cups onion, diced)" → 取 about 後面的描述
	aboutClauseRe = regexp.MustCompile(`(?i)^\d[\d\s/]*\S+\s+\(about\s+(.+)\)\s*$`)

	// "2 large or 3 medium carrots" → 只留第一個選項
	alternativeRe = regexp.MustCompile(`(?i)^(\d[\d/.\s]*\S+)\s+or\s+\d[\d/.\s]*\S+\s+(.+)$`)

	// 單位縮寫的常見錯寫與變體
	unitNormalizations = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?i)\blb's\b`), "lbs"},
		{regexp.MustCompile(`(?i)\boz's\b`), "oz"},
		{regexp.MustCompile(`(?i)\btblsp\b`), "tbsp"},
		{regexp.MustCompile(`(?i)\btbls\b`), "tbsp"},
		{regexp.MustCompile(`(?i)\btsps?\.`), "tsp"},
		{regexp.MustCompile(`(?i)\btbsps?\.`), "tbsp"},
	}
)

// SimplifyAlternatives 把 "A or B" 的替代寫法簡化成第一個選項。
// 一律取先列的選項，這是刻意的簡化，不是營養等價換算。
func SimplifyAlternatives(raw string) string {
	if m := alternativeRe.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s %s", m[1], m[2])
	}
	return raw
}

// Normalize 在結構化解析前清理一行食材文字。
// 純函數、不會失敗，最壞情況是幾乎原樣返回。重複套用結果不變。
func Normalize(raw string) string {
	// 彎引號、彎撇號換成直撇號
	result := strings.NewReplacer("’", "'", "‘", "'", "“", `"`, "”", `"`).Replace(raw)

	// 修復 HTML 換行造成的斷字："sodium- free" → "sodium-free"
	result = hyphenBreakRe.ReplaceAllString(result, "$1-$2")

	// 統一單位縮寫
	for _, n := range unitNormalizations {
		result = n.re.ReplaceAllString(result, n.repl)
	}

	result = strings.TrimSpace(multiSpaceRe.ReplaceAllString(result, " "))

	// "1 extra-large (about 2 1/2 cups onion, diced)" → "2 1/2 cups onion, diced"
	// 要在去括號之前做，about 子句幾乎都帶單位
	if m := aboutClauseRe.FindStringSubmatch(result); m != nil {
		result = m[1]
	}

	// 去掉括號內的單位換算註記
	result = parenConversionRe.ReplaceAllString(result, "")
	result = strings.TrimSpace(multiSpaceRe.ReplaceAllString(result, " "))

	// "2 x 400g cans ..." → "800 g ..."
	if m := multipackRe.FindStringSubmatch(result); m != nil {
		multiplier, err1 := strconv.Atoi(m[1])
		weight, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			result = strings.TrimSpace(fmt.Sprintf("%d %s %s", weight*multiplier, strings.ToLower(m[3]), m[4]))
		}
	}

	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(result, " "))
}
