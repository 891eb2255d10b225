package ingredient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"recipe-calorie/internal/pkg/common"
)

// ParsedAmount 一組可換算的 (數量, 單位)
type ParsedAmount struct {
	Quantity float64
	Unit     string
}

// ParsedIngredient 一行食材的結構化結果。
// Amounts 可以是空的（解析不出數量），這是合法的終態，不是錯誤。
type ParsedIngredient struct {
	Raw     string
	Name    string
	Size    string
	Amounts []ParsedAmount
}

// Parser 包裝斷詞服務，把一行原始文字轉成 ParsedIngredient
type Parser struct {
	tagger Tagger
}

// NewParser 創建解析器
func NewParser(tagger Tagger) *Parser {
	return &Parser{tagger: tagger}
}

// Parse 解析一行食材。斷詞失敗時不往上拋，
// 回傳 name=raw、amounts 為空的降級結果，讓 pipeline 標成 skipped。
func (p *Parser) Parse(ctx context.Context, raw string) ParsedIngredient {
	simplified := SimplifyAlternatives(raw)
	normalized := Normalize(simplified)

	tagged, err := p.tagger.Tag(ctx, normalized)
	if err != nil {
		common.LogDebug("斷詞失敗，降級處理",
			zap.String("line", normalized),
			zap.Error(err),
		)
		return ParsedIngredient{Raw: raw, Name: raw}
	}

	name := tagged.Name
	if name == "" {
		name = raw
	}

	parsed := ParsedIngredient{
		Raw:  raw,
		Name: name,
		Size: strings.ToLower(tagged.Size),
	}

	// 複合數量（"2 cups plus 2 tbsp"）的子片段全部壓平進 Amounts。
	// 跳過第二段會默默少算質量，所以這裡是正確性需求不是邊角情況。
	for _, amt := range tagged.Amounts {
		if len(amt.Amounts) > 0 {
			for _, sub := range amt.Amounts {
				parsed.appendAmount(sub)
			}
			continue
		}
		parsed.appendAmount(amt)
	}

	return parsed
}

func (pi *ParsedIngredient) appendAmount(amt TaggedAmount) {
	if strings.TrimSpace(amt.Quantity) == "" {
		return
	}
	quantity, err := ParseQuantity(amt.Quantity)
	if err != nil || quantity <= 0 {
		return
	}
	pi.Amounts = append(pi.Amounts, ParsedAmount{Quantity: quantity, Unit: amt.Unit})
}

// unicode 分數字符對應值
var unicodeFractions = map[rune]float64{
	'¼': 1.0 / 4, '½': 1.0 / 2, '¾': 3.0 / 4,
	'⅐': 1.0 / 7, '⅑': 1.0 / 9, '⅒': 1.0 / 10,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
}

// ParseQuantity 把數量字串轉成 float64。
// 支援 "3/4"、"1 1/2"、"2.5" 與 unicode 分數字符。
func ParseQuantity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty quantity")
	}

	// 單一 unicode 分數
	runes := []rune(s)
	if len(runes) == 1 {
		if v, ok := unicodeFractions[runes[0]]; ok {
			return v, nil
		}
	}

	// 帶整數的分數 "1 1/2"
	if fields := strings.Fields(s); len(fields) == 2 && strings.Contains(fields[1], "/") {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
		}
		frac, err := parseFraction(fields[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	}

	// 純分數 "3/4"
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}

	return strconv.ParseFloat(s, 64)
}

func parseFraction(s string) (float64, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction %q: %w", s, err)
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction %q: %w", s, err)
	}
	if den == 0 {
		return 0, fmt.Errorf("zero denominator in %q", s)
	}
	return num / den, nil
}
