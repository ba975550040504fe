package gemini

// Pricing calculates API costs based on token usage.
type Pricing interface {
	// GetCost calculates cost for a given model and token usage
	GetCost(model string, tokensIn, tokensOut int) float64
}

// ModelPricing contains pricing information for a model.
type ModelPricing struct {
	InputPer1M  float64 // Cost per 1M input tokens in USD
	OutputPer1M float64 // Cost per 1M output tokens in USD
}

// DefaultPricing provides cost calculation from a static rate table. Models
// absent from the table cost zero.
type DefaultPricing struct {
	prices map[string]ModelPricing
}

// NewDefaultPricing creates a pricing calculator with current rates.
func NewDefaultPricing() *DefaultPricing {
	return &DefaultPricing{prices: buildPricingTable()}
}

// GetCost calculates the cost for a given request.
func (p *DefaultPricing) GetCost(model string, tokensIn, tokensOut int) float64 {
	price, ok := p.prices[model]
	if !ok {
		return 0.0
	}

	inputCost := float64(tokensIn) / 1_000_000.0 * price.InputPer1M
	outputCost := float64(tokensOut) / 1_000_000.0 * price.OutputPer1M
	return inputCost + outputCost
}

// buildPricingTable returns pricing data per model.
// Source: https://ai.google.dev/gemini-api/docs/pricing
func buildPricingTable() map[string]ModelPricing {
	return map[string]ModelPricing{
		"gemini-2.5-pro": {
			InputPer1M:  1.25,
			OutputPer1M: 10.00,
		},
		"gemini-2.5-flash": {
			InputPer1M:  0.15,
			OutputPer1M: 0.60,
		},
		"gemini-2.0-flash": {
			InputPer1M:  0.10,
			OutputPer1M: 0.40,
		},
		"gemini-1.5-pro": {
			InputPer1M:  1.25,
			OutputPer1M: 5.00,
		},
		"gemini-1.5-flash": {
			InputPer1M:  0.075,
			OutputPer1M: 0.30,
		},
	}
}
