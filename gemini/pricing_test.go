package gemini_test

import (
	"testing"

	"github.com/Adriftdev/gemini-client/gemini"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPricing_KnownModel(t *testing.T) {
	p := gemini.NewDefaultPricing()

	// 1M input at $0.15 + 1M output at $0.60
	cost := p.GetCost("gemini-2.5-flash", 1_000_000, 1_000_000)
	assert.InDelta(t, 0.75, cost, 1e-9)
}

func TestDefaultPricing_UnknownModelIsFree(t *testing.T) {
	p := gemini.NewDefaultPricing()

	assert.Zero(t, p.GetCost("some-experimental-model", 1_000_000, 1_000_000))
}

func TestDefaultPricing_ZeroTokens(t *testing.T) {
	p := gemini.NewDefaultPricing()

	assert.Zero(t, p.GetCost("gemini-2.5-pro", 0, 0))
}
