package ingredient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTaggerBasicLines(t *testing.T) {
	tagger := NewRuleTagger()
	ctx := context.Background()

	tests := []struct {
		line     string
		wantName string
		wantQty  string
		wantUnit string
	}{
		{"2 cups flour", "flour", "2", "cup"},
		{"1 1/2 tbsp olive oil", "olive oil", "1 1/2", "tbsp"},
		{"3/4 cup sugar", "sugar", "3/4", "cup"},
		{"400 g chickpeas", "chickpeas", "400", "g"},
		{"2 cloves garlic, minced", "garlic, minced", "2", "cloves"},
		{"½ cup milk", "milk", "½", "cup"},
		{"2-3 carrots", "carrots", "2", ""},
		{"4 fl oz heavy cream", "heavy cream", "4", "fl oz"},
	}
	for _, tt := range tests {
		tagged, err := tagger.Tag(ctx, tt.line)
		require.NoError(t, err, tt.line)
		require.Len(t, tagged.Amounts, 1, tt.line)
		assert.Equal(t, tt.wantName, tagged.Name, tt.line)
		assert.Equal(t, tt.wantQty, tagged.Amounts[0].Quantity, tt.line)
		assert.Equal(t, tt.wantUnit, tagged.Amounts[0].Unit, tt.line)
	}
}

func TestRuleTaggerCompositeAmounts(t *testing.T) {
	tagger := NewRuleTagger()

	tagged, err := tagger.Tag(context.Background(), "1 cup plus 2 tbsp flour")
	require.NoError(t, err)
	require.Len(t, tagged.Amounts, 2)
	assert.Equal(t, "cup", tagged.Amounts[0].Unit)
	assert.Equal(t, "tbsp", tagged.Amounts[1].Unit)
	assert.Equal(t, "flour", tagged.Name)
}

func TestRuleTaggerSize(t *testing.T) {
	tagger := NewRuleTagger()

	tagged, err := tagger.Tag(context.Background(), "3 medium onions")
	require.NoError(t, err)
	assert.Equal(t, "medium", tagged.Size)
	assert.Equal(t, "onions", tagged.Name)
	require.Len(t, tagged.Amounts, 1)
	assert.Equal(t, "3", tagged.Amounts[0].Quantity)
	assert.Equal(t, "", tagged.Amounts[0].Unit)

	tagged, err = tagger.Tag(context.Background(), "1 extra large egg")
	require.NoError(t, err)
	assert.Equal(t, "extra-large", tagged.Size)
}

func TestRuleTaggerNoQuantity(t *testing.T) {
	tagger := NewRuleTagger()

	tagged, err := tagger.Tag(context.Background(), "salt and pepper to taste")
	require.NoError(t, err)
	assert.Empty(t, tagged.Amounts)
	assert.Equal(t, "salt and pepper to taste", tagged.Name)

	_, err = tagger.Tag(context.Background(), "   ")
	assert.Error(t, err)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"2.5", 2.5},
		{"1 1/2", 1.5},
		{"3/4", 0.75},
		{"½", 0.5},
		{"⅓", 1.0 / 3},
	}
	for _, tt := range tests {
		got, err := ParseQuantity(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}

	_, err := ParseQuantity("1/0")
	assert.Error(t, err)
	_, err = ParseQuantity("not a number")
	assert.Error(t, err)
}

func TestParserDegradesOnTaggerFailure(t *testing.T) {
	parser := NewParser(failingTagger{})

	parsed := parser.Parse(context.Background(), "2 cups flour")
	assert.Equal(t, "2 cups flour", parsed.Raw)
	assert.Equal(t, "2 cups flour", parsed.Name)
	assert.Empty(t, parsed.Amounts)
}

func TestParserEndToEnd(t *testing.T) {
	parser := NewParser(NewRuleTagger())

	parsed := parser.Parse(context.Background(), "2 x 400g cans chickpeas")
	assert.Equal(t, "chickpeas", parsed.Name)
	require.Len(t, parsed.Amounts, 1)
	assert.Equal(t, 800.0, parsed.Amounts[0].Quantity)
	assert.Equal(t, "g", parsed.Amounts[0].Unit)

	parsed = parser.Parse(context.Background(), "1 1/2 cups sugar")
	require.Len(t, parsed.Amounts, 1)
	assert.Equal(t, 1.5, parsed.Amounts[0].Quantity)
	assert.Equal(t, "cup", parsed.Amounts[0].Unit)
}

type failingTagger struct{}

func (failingTagger) Tag(ctx context.Context, line string) (*TaggedLine, error) {
	return nil, assert.AnError
}
