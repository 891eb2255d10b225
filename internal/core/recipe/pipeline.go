package recipe

import (
	"context"
	"math"

	"go.uber.org/zap"

	"recipe-calorie/internal/core/ingredient"
	"recipe-calorie/internal/core/nutrition"
	"recipe-calorie/internal/core/units"
	"recipe-calorie/internal/pkg/common"
)

// Pipeline 處理單行食材：解析、換算公克、查熱量
type Pipeline struct {
	parser   *ingredient.Parser
	resolver *nutrition.Resolver
}

// NewPipeline 創建食材處理管線
func NewPipeline(parser *ingredient.Parser, resolver *nutrition.Resolver) *Pipeline {
	return &Pipeline{parser: parser, resolver: resolver}
}

// Process 處理一行食材。回傳回復得了的錯誤都收在結果的
// status / note 裡；error 只在整個請求該中止時非 nil（金鑰無效）。
func (p *Pipeline) Process(ctx context.Context, raw string) (IngredientResult, error) {
	parsed := p.parser.Parse(ctx, raw)

	result := IngredientResult{Raw: raw, Name: parsed.Name}

	if len(parsed.Amounts) == 0 {
		result.Status = StatusSkipped
		result.Note = "no quantity found"
		return result, nil
	}

	// 各組數量分別換算，失敗的丟掉；低信心的換算方式記第一個碰到的
	var grams float64
	var note string
	converted := 0
	for _, amt := range parsed.Amounts {
		g, method, err := units.ToGrams(amt.Quantity, amt.Unit, parsed.Name, parsed.Size)
		if err != nil {
			common.LogDebug("換算失敗",
				zap.String("name", parsed.Name),
				zap.String("unit", amt.Unit),
				zap.Error(err),
			)
			continue
		}
		grams += g
		converted++
		if note == "" && units.IsLowConfidence(method) {
			note = method
		}
	}

	if converted == 0 {
		result.Status = StatusSkipped
		result.Note = "could not convert any amounts to grams"
		return result, nil
	}

	grams = round1(grams)
	result.Grams = &grams
	result.Note = note

	est, softReason, err := p.resolver.Resolve(ctx, parsed.Name)
	if err != nil {
		return result, err
	}
	if est == nil {
		result.Status = StatusNotFound
		if result.Note == "" {
			result.Note = softReason
		} else {
			result.Note = result.Note + "; " + softReason
		}
		return result, nil
	}

	kcal100 := est.KcalPer100g
	total := round1(grams / 100 * kcal100)
	result.KcalPer100g = &kcal100
	result.TotalKcal = &total
	result.USDAMatch = est.Description
	result.Status = StatusOK
	return result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
