package llm

import "fmt"

const identifyPrompt = "Identify this plant. Provide the common name, scientific name, " +
	"a brief description, detailed care instructions (water, light, soil, temperature), and a fun fact."

const diagnoseBasePrompt = "Analyze this plant for any signs of disease, pests, or nutrient deficiencies. " +
	"Determine its health status."

// diagnosePrompt appends the location context only when a hint was given.
// The hint has already passed validation upstream; it is embedded verbatim.
func diagnosePrompt(locationHint string) string {
	p := diagnoseBasePrompt
	if locationHint != "" {
		p += fmt.Sprintf(" The plant is located in zip code %s. Take into account the local climate, "+
			"season, and common regional pests or diseases for this area when forming your diagnosis and advice.", locationHint)
	}
	return p
}

func productSearchPrompt(query string) string {
	return fmt.Sprintf(`Find 3 top-rated commercial products available online to treat %q in plants.
Use Google Search to find real products with prices.

Return a strictly formatted JSON object with a single key "products" containing an array of items.
Each item must have:
- "name": Exact product name
- "price": Price with currency symbol (e.g. "$15.99") or empty string if not found.
- "description": 1 sentence on why it works
- "imageUrl": A direct URL to the product image if you can find one in the search snippets (otherwise leave empty string).
- "productUrl": A URL to purchase the product (use the search result link)

Do not use markdown formatting in the output. Just raw JSON.`, query)
}

const chatSystemInstruction = "You are Greenthumb, an expert AI botanist. When users ask about specific " +
	"plants, pests, or products, use Google Search to provide accurate, real-time information. If you find " +
	"relevant images in the search results, include them in your response using Markdown image syntax: " +
	"![Description](Image URL). Keep answers helpful and concise."
