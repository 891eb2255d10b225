package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMultipack(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2 x 400g cans chickpeas", "800 g chickpeas"},
		{"3 x 200 g bags spinach", "600 g spinach"},
		{"2x400g tins chopped tomatoes", "800 g chopped tomatoes"},
		{"2 x large onions", "2 x large onions"}, // 沒有重量單位，原樣保留
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestNormalizeParenConversions(t *testing.T) {
	assert.Equal(t,
		"1 stick butter",
		Normalize("1 stick butter (115 grams or 1/2 cup)"),
	)
	// 非單位註記的括號要保留
	assert.Equal(t,
		"2 apples (preferably Granny Smith)",
		Normalize("2 apples (preferably Granny Smith)"),
	)
}

func TestNormalizeAboutClause(t *testing.T) {
	assert.Equal(t,
		"2 1/2 cups onion, diced",
		Normalize("1 extra-large (about 2 1/2 cups onion, diced)"),
	)
}

func TestNormalizeUnitSpellings(t *testing.T) {
	assert.Equal(t, "2 lbs ground beef", Normalize("2 lb's ground beef"))
	assert.Equal(t, "1 tbsp olive oil", Normalize("1 tblsp olive oil"))
	assert.Equal(t, "2 tsp vanilla", Normalize("2 tsps. vanilla"))
}

func TestNormalizeTypography(t *testing.T) {
	assert.Equal(t, "1 cup lady's fingers", Normalize("1 cup lady’s fingers"))
	assert.Equal(t, "1 tsp sodium-free baking soda", Normalize("1 tsp sodium- free baking soda"))
	assert.Equal(t, "2 cups flour", Normalize("  2   cups\tflour  "))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"2 x 400g cans chickpeas",
		"1 extra-large (about 2 1/2 cups onion, diced)",
		"1 stick butter (115 grams or 1/2 cup)",
		"2 lb's ground beef",
		"plain line with no quantities",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

func TestSimplifyAlternatives(t *testing.T) {
	assert.Equal(t, "2 large carrots", SimplifyAlternatives("2 large or 3 medium carrots"))
	// 沒有替代寫法的行原樣返回
	assert.Equal(t, "2 cups flour", SimplifyAlternatives("2 cups flour"))
}
