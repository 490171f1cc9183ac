package recommend

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/internal/rank"
	"github.com/demirreren/brev-launcher/pkg/api"
)

func sdSignals() api.ProjectSignals {
	return api.ProjectSignals{Artifacts: []api.Artifact{
		{Path: "app.py", Content: "pipe = StableDiffusionPipeline.from_pretrained('runwayml/stable-diffusion-v1-5')"},
	}}
}

func curatedEngine() *Engine {
	return NewEngine(catalog.NewPatternCatalog(), catalog.NewCuratedCatalog())
}

func TestRecommendCheapestFit(t *testing.T) {
	// SD 1.5: effective 9 GB, buffered 10.8 GB. The $0.40 T4 (16 GB) is
	// the cheapest curated offering that fits.
	res, err := curatedEngine().Recommend(sdSignals(), nil, api.DefaultUsagePolicy())
	require.NoError(t, err)

	assert.Equal(t, "T4", res.Best.Offering.AcceleratorModel)
	assert.Equal(t, 9.0, res.Requirement.EffectiveGB)
	assert.Nil(t, res.Savings, "no baseline means no savings comparison")
	assert.Nil(t, res.Baseline)

	required := rank.RequiredGB(res.Requirement, api.DefaultUsagePolicy())
	for _, alt := range res.Alternatives {
		assert.GreaterOrEqual(t, alt.Offering.TotalMemoryGB(), required)
	}
}

func TestRecommendWithBaselineComputesSavings(t *testing.T) {
	baseline := catalog.Offering{Provider: "BREV", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.90}

	res, err := curatedEngine().Recommend(sdSignals(), &baseline, api.DefaultUsagePolicy())
	require.NoError(t, err)
	require.NotNil(t, res.Savings)

	// (0.90 - 0.40) * 24 * 365 = 4380
	assert.True(t, res.Savings.YearlyUSD.Equal(decimal.NewFromInt(4380)), "yearly %s", res.Savings.YearlyUSD)
	assert.True(t, res.Savings.MonthlyUSD.Equal(decimal.NewFromInt(360)), "monthly %s", res.Savings.MonthlyUSD)
}

func TestRecommendNoFit(t *testing.T) {
	// A 70B model needs 252 GB buffered; nothing in the curated catalog
	// comes close.
	signals := api.ProjectSignals{Artifacts: []api.Artifact{
		{Path: "llm.py", Content: "model = 'meta-llama/Llama-2-70b-hf'"},
	}}

	res, err := curatedEngine().Recommend(signals, nil, api.DefaultUsagePolicy())
	assert.Nil(t, res)

	var noFit *NoFitError
	require.ErrorAs(t, err, &noFit)
	assert.InDelta(t, 140*1.5*1.2, noFit.RequiredGB, 1e-9)
	assert.Contains(t, noFit.Error(), "total memory")
}

func TestRecommendInvalidPolicy(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*api.UsagePolicy)
	}{
		{"zero hours", func(p *api.UsagePolicy) { p.HoursPerDay = 0 }},
		{"negative hours", func(p *api.UsagePolicy) { p.HoursPerDay = -4 }},
		{"buffer above one", func(p *api.UsagePolicy) { p.SafetyBufferFraction = 1.5 }},
		{"negative buffer", func(p *api.UsagePolicy) { p.SafetyBufferFraction = -0.1 }},
		{"zero cap", func(p *api.UsagePolicy) { p.AlternativesCap = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			policy := api.DefaultUsagePolicy()
			tc.mutate(&policy)

			res, err := curatedEngine().Recommend(sdSignals(), nil, policy)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrInvalidPolicy), "got %v", err)
		})
	}
}

func TestRecommendAlternativesCap(t *testing.T) {
	policy := api.DefaultUsagePolicy()
	policy.AlternativesCap = 2

	engine := NewEngine(catalog.NewPatternCatalog(), catalog.NewAdvancedCatalog())
	res, err := engine.Recommend(sdSignals(), nil, policy)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.Alternatives), 2)
}

func TestRecommendIsIdempotent(t *testing.T) {
	baseline := catalog.Offering{Provider: "BREV", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.90}
	engine := NewEngine(catalog.NewPatternCatalog(), catalog.NewAdvancedCatalog())
	policy := api.DefaultUsagePolicy()

	first, err := engine.Recommend(sdSignals(), &baseline, policy)
	require.NoError(t, err)
	second, err := engine.Recommend(sdSignals(), &baseline, policy)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecommendAdvancedFindsCheaperThanCurated(t *testing.T) {
	// The wider table can only match or beat the curated price for the
	// same workload, never exceed it.
	curated, err := curatedEngine().Recommend(sdSignals(), nil, api.DefaultUsagePolicy())
	require.NoError(t, err)

	advanced, err := NewEngine(catalog.NewPatternCatalog(), catalog.NewAdvancedCatalog()).
		Recommend(sdSignals(), nil, api.DefaultUsagePolicy())
	require.NoError(t, err)

	assert.LessOrEqual(t, advanced.Best.Offering.HourlyPriceUSD, curated.Best.Offering.HourlyPriceUSD)
}
