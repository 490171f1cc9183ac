package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/internal/estimate"
	"github.com/demirreren/brev-launcher/pkg/api"
)

func policyWithBuffer(buffer float64) api.UsagePolicy {
	p := api.DefaultUsagePolicy()
	p.SafetyBufferFraction = buffer
	return p
}

func TestRequiredGB(t *testing.T) {
	req := estimate.ResourceRequirement{EffectiveGB: 9.0}
	assert.InDelta(t, 10.8, RequiredGB(req, policyWithBuffer(0.2)), 1e-9)
}

func TestRankFiltersByBufferedRequirement(t *testing.T) {
	// effectiveGB=9 with a 20% buffer needs 10.8 GB: 16 GB passes,
	// 10 GB is excluded.
	offerings := []catalog.Offering{
		{Provider: "A", AcceleratorModel: "SMALL", UnitCount: 1, MemoryPerUnitGB: 10, HourlyPriceUSD: 0.30},
		{Provider: "B", AcceleratorModel: "BIG", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.40},
	}
	req := estimate.ResourceRequirement{EffectiveGB: 9.0}

	ranked := NewRanker().Rank(req, offerings, policyWithBuffer(0.2))
	require.Len(t, ranked, 1)
	assert.Equal(t, "BIG", ranked[0].Offering.AcceleratorModel)
	assert.True(t, ranked[0].Fits)
}

func TestRankPriceTieBrokenByCostPerGB(t *testing.T) {
	// Two offerings at $0.59/hr: the 32 GB one has the lower cost per GB
	// and ranks first.
	offerings := []catalog.Offering{
		{Provider: "A", AcceleratorModel: "GPU-16", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.59},
		{Provider: "B", AcceleratorModel: "GPU-32", UnitCount: 1, MemoryPerUnitGB: 32, HourlyPriceUSD: 0.59},
	}
	req := estimate.ResourceRequirement{EffectiveGB: 8.0}

	ranked := NewRanker().Rank(req, offerings, policyWithBuffer(0.2))
	require.Len(t, ranked, 2)
	assert.Equal(t, "GPU-32", ranked[0].Offering.AcceleratorModel)
	assert.Equal(t, "GPU-16", ranked[1].Offering.AcceleratorModel)
}

func TestRankFullTieKeepsInsertionOrder(t *testing.T) {
	offerings := []catalog.Offering{
		{Provider: "FIRST", AcceleratorModel: "SAME", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.65},
		{Provider: "SECOND", AcceleratorModel: "SAME", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.65},
	}
	req := estimate.ResourceRequirement{EffectiveGB: 4.0}

	ranked := NewRanker().Rank(req, offerings, policyWithBuffer(0.2))
	require.Len(t, ranked, 2)
	assert.Equal(t, "FIRST", ranked[0].Offering.Provider)
	assert.Equal(t, "SECOND", ranked[1].Offering.Provider)
}

func TestRankOutputIsSorted(t *testing.T) {
	req := estimate.ResourceRequirement{EffectiveGB: 9.0}
	policy := policyWithBuffer(0.2)
	ranked := NewRanker().Rank(req, catalog.NewAdvancedCatalog().AllOfferings(), policy)
	require.NotEmpty(t, ranked)

	required := RequiredGB(req, policy)
	for i, c := range ranked {
		assert.GreaterOrEqual(t, c.Offering.TotalMemoryGB(), required)
		if i > 0 {
			prev := ranked[i-1]
			assert.LessOrEqual(t, prev.Offering.HourlyPriceUSD, c.Offering.HourlyPriceUSD+priceEpsilon)
			if nearlyEqual(prev.Offering.HourlyPriceUSD, c.Offering.HourlyPriceUSD) {
				assert.LessOrEqual(t, prev.CostPerGB, c.CostPerGB+priceEpsilon)
			}
		}
	}
}

func TestRankEmptyWhenNothingFits(t *testing.T) {
	req := estimate.ResourceRequirement{EffectiveGB: 10000}
	ranked := NewRanker().Rank(req, catalog.NewAdvancedCatalog().AllOfferings(), policyWithBuffer(0.2))
	assert.Empty(t, ranked)
}

func TestRankRaisingBufferNeverGrowsRetainedSet(t *testing.T) {
	req := estimate.ResourceRequirement{EffectiveGB: 40}
	offerings := catalog.NewAdvancedCatalog().AllOfferings()

	prev := len(offerings) + 1
	for _, buffer := range []float64{0, 0.1, 0.2, 0.5, 0.8, 1.0} {
		n := len(NewRanker().Rank(req, offerings, policyWithBuffer(buffer)))
		assert.LessOrEqual(t, n, prev, "buffer %.1f", buffer)
		prev = n
	}
}

func TestRankIsDeterministic(t *testing.T) {
	req := estimate.ResourceRequirement{EffectiveGB: 12}
	offerings := catalog.NewAdvancedCatalog().AllOfferings()
	policy := policyWithBuffer(0.2)

	first := NewRanker().Rank(req, offerings, policy)
	second := NewRanker().Rank(req, offerings, policy)
	assert.Equal(t, first, second)
}
