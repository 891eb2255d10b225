package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGramsMassUnits(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     float64
	}{
		{"grams pass through", 400, "g", 400},
		{"kilograms", 1.5, "kg", 1500},
		{"ounces", 8, "oz", 226.8},
		{"pounds", 1, "lb", 453.6},
		{"plural form", 2, "pounds", 907.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, method, err := ToGrams(tt.quantity, tt.unit, "chicken", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, MethodWeight, method)
			assert.False(t, IsLowConfidence(method))
		})
	}
}

func TestToGramsVolumeWithDensity(t *testing.T) {
	// 半杯橄欖油：0.5 * 236.588 mL * (216/236.588) g/mL = 108 g
	got, method, err := ToGrams(0.5, "cup", "olive oil", "")
	require.NoError(t, err)
	assert.Equal(t, 108.0, got)
	assert.Equal(t, MethodDensity, method)
	assert.False(t, IsLowConfidence(method))
}

func TestToGramsVolumeWaterDensityFallback(t *testing.T) {
	// 密度表查不到的食材，用水密度 1 g/mL
	got, method, err := ToGrams(2, "tbsp", "mystery sauce", "")
	require.NoError(t, err)
	assert.InDelta(t, 29.6, got, 0.05)
	assert.Equal(t, MethodWaterDensity, method)
	assert.True(t, IsLowConfidence(method))
}

func TestToGramsPerItemWeight(t *testing.T) {
	got, method, err := ToGrams(3, "", "onions", "medium")
	require.NoError(t, err)
	assert.Equal(t, 450.0, got)
	assert.Equal(t, MethodItemWeight, method)
	assert.True(t, IsLowConfidence(method))

	// 沒給尺寸用預設重量
	got, _, err = ToGrams(2, "", "egg", "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	// 尺寸影響每件重量
	got, _, err = ToGrams(2, "", "eggs", "large")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
	got, _, err = ToGrams(2, "", "eggs", "small")
	require.NoError(t, err)
	assert.Equal(t, 80.0, got)
}

func TestToGramsCountUnitFallsBackToItemWeight(t *testing.T) {
	// "2 cloves garlic"：clove 不是換算單位，查每件重量表
	got, method, err := ToGrams(2, "cloves", "garlic", "")
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	assert.Equal(t, MethodItemWeight, method)
}

func TestToGramsUnconvertible(t *testing.T) {
	_, _, err := ToGrams(1, "", "unicorn meat", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no unit")

	_, _, err = ToGrams(1, "dollop", "unicorn meat", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized unit")
}

func TestLookupDensityLongestMatch(t *testing.T) {
	// "salted butter" 要命中 "butter"，不是 "salt"
	d, ok := LookupDensity("salted butter")
	require.True(t, ok)
	assert.InDelta(t, 227/MLPerCup, d, 1e-9)

	// "rice flour" 要命中 "flour"，不是 "rice"
	d, ok = LookupDensity("rice flour")
	require.True(t, ok)
	assert.InDelta(t, 120/MLPerCup, d, 1e-9)

	// 子字串不算：word boundary 才命中
	_, ok = LookupDensity("buttermilk pancake mix")
	require.True(t, ok)

	_, ok = LookupDensity("nothing matches here")
	assert.False(t, ok)
}

func TestLookupUnitAliases(t *testing.T) {
	for _, alias := range []string{"tbsp", "tablespoon", "tablespoons", "tbsp."} {
		u, ok := Lookup(alias)
		require.True(t, ok, alias)
		assert.Equal(t, ClassVolume, u.Class, alias)
		assert.InDelta(t, 14.787, u.Factor, 0.001, alias)
	}

	u, ok := Lookup("fl oz")
	require.True(t, ok)
	assert.Equal(t, ClassVolume, u.Class)
	assert.InDelta(t, 29.5735, u.Factor, 0.001)
}
