package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Freshly grated Parmesan", "parmesan"},
		{"unsalted butter, softened", "butter"},
		{"milk or cream", "milk"},
		{"chicken stock, plus more as needed", "chicken stock"},
		{"3 large eggs at room temperature", "3 eggs"},
		{"finely chopped onion", "onion"},
		{"low-sodium soy sauce", "soy sauce"},
		{"flour", "flour"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanName(tt.in), tt.in)
	}
}

func TestLookupKnownExactAndLongestMatch(t *testing.T) {
	kcal, desc, ok := LookupKnown("salt")
	assert.True(t, ok)
	assert.Equal(t, 0.0, kcal)
	assert.Contains(t, desc, "built-in value")

	// "salted butter" 要命中 "salted butter" 這個鍵，不是 "salt"
	kcal, _, ok = LookupKnown("salted butter")
	assert.True(t, ok)
	assert.Equal(t, 717.0, kcal)

	_, _, ok = LookupKnown("qqqq zzzz")
	assert.False(t, ok)
}
