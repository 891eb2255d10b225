package units

import (
	"fmt"
	"math"
	"strings"
)

// 換算方式，會出現在結果的 note 欄位，前端以此標示低信心估算
const (
	MethodWeight       = "weight conversion"
	MethodDensity      = "density lookup"
	MethodWaterDensity = "approximate (water density used)"
	MethodItemWeight   = "estimated per-item weight"
)

func toLower(s string) string { return strings.ToLower(s) }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ToGrams 把 (數量, 單位) 換算成公克。
// 判斷順序：無單位 → 每件重量表；重量單位 → 直接換算；
// 容量單位 → 密度表，查不到用水密度；其餘 → 每件重量表。
// 換算不了時回傳原因，呼叫端把該筆數量丟掉即可，不影響其他數量。
func ToGrams(quantity float64, unit, ingredientName, size string) (float64, string, error) {
	if strings.TrimSpace(unit) == "" {
		// 沒有單位，查每件重量表（例如 "1 medium onion"）
		if itemG, ok := LookupItemWeight(ingredientName, size); ok {
			return round1(quantity * itemG), MethodItemWeight, nil
		}
		return 0, "", fmt.Errorf("no unit (count-based ingredient)")
	}

	u, ok := Lookup(unit)
	if !ok {
		// 不是可換算單位（can、clove、piece 之類），查每件重量表
		if itemG, ok := LookupItemWeight(ingredientName, size); ok {
			return round1(quantity * itemG), MethodItemWeight, nil
		}
		return 0, "", fmt.Errorf("unrecognized unit: %s", unit)
	}

	switch u.Class {
	case ClassMass:
		return round1(quantity * u.Factor), MethodWeight, nil
	case ClassVolume:
		ml := quantity * u.Factor
		if density, ok := LookupDensity(ingredientName); ok {
			return round1(ml * density), MethodDensity, nil
		}
		// 查不到密度，用水的密度 1 g/mL 估算
		return round1(ml * 1.0), MethodWaterDensity, nil
	}

	// Lookup 只會回傳重量或容量單位，理論上走不到這裡
	if itemG, ok := LookupItemWeight(ingredientName, size); ok {
		return round1(quantity * itemG), MethodItemWeight, nil
	}
	return 0, "", fmt.Errorf("unrecognized unit: %s", unit)
}

// IsLowConfidence 判斷換算方式是否為估算值
func IsLowConfidence(method string) bool {
	return strings.Contains(method, "approximate") || strings.Contains(method, "estimated")
}
