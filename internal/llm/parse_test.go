package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductsCleanJSON(t *testing.T) {
	raw := `{"products":[{"name":"Neem Oil","price":"$12.99","description":"Kills mites on contact.","productUrl":"http://shop/neem"}]}`
	got := ParseProducts(raw)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Neem Oil", got.Products[0].Name)
	assert.Equal(t, "$12.99", got.Products[0].Price)
	assert.Equal(t, raw, got.RawText)
}

func TestParseProductsMarkdownFenced(t *testing.T) {
	raw := "```json\n{\"products\":[{\"name\":\"Copper Fungicide\",\"price\":\"\",\"description\":\"Stops fungal spread.\"}]}\n```"
	got := ParseProducts(raw)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Copper Fungicide", got.Products[0].Name)
	assert.Empty(t, got.Products[0].Price)
}

func TestParseProductsMalformedFallsBack(t *testing.T) {
	for _, raw := range []string{
		`{"products":[{"name":"Trunca`,
		"I could not find any products, sorry.",
		"",
	} {
		got := ParseProducts(raw)
		assert.Empty(t, got.Products, "input %q", raw)
		assert.Equal(t, raw, got.RawText)
	}
}

func TestParseProductsProseWrappedJSON(t *testing.T) {
	raw := `Here are some options: {"products":[{"name":"Bonide Spray","price":"$8.50","description":"Broad spectrum."}]} Let me know if you need more.`
	got := ParseProducts(raw)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Bonide Spray", got.Products[0].Name)
}

func TestParseProductsKeepsRawTextVerbatim(t *testing.T) {
	raw := "```json\n{\"products\":[]}\n```"
	got := ParseProducts(raw)
	assert.Equal(t, raw, got.RawText)
	assert.Empty(t, got.Products)
}
