package llm

import (
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/util/jsonutil"
)

type productEnvelope struct {
	Products []types.ProductRecommendation `json:"products"`
}

// ParseProducts is the single best-effort extraction seam for product
// search bodies. It strips any markdown fences, then attempts a JSON parse;
// on failure it returns an empty product list while keeping the raw text,
// so a garbled body degrades instead of erroring.
func ParseProducts(raw string) types.SearchResult {
	result := types.SearchResult{RawText: raw}
	var env productEnvelope
	if err := jsonutil.UnmarshalFlex([]byte(raw), &env); err != nil {
		return result
	}
	result.Products = env.Products
	return result
}
