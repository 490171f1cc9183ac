// Package rank filters the offering catalog against a requirement and
// orders the survivors by cost.
package rank

import (
	"math"
	"sort"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/internal/estimate"
	"github.com/demirreren/brev-launcher/pkg/api"
)

// priceEpsilon guards the price comparison against floating-point false
// inequality when breaking ties.
const priceEpsilon = 1e-6

// Candidate is one offering that survived fit filtering.
type Candidate struct {
	Offering  catalog.Offering `json:"offering"`
	Fits      bool             `json:"fits"`
	CostPerGB float64          `json:"cost_per_gb"`
}

// RequiredGB is the buffered memory threshold an offering must meet:
// the effective requirement widened by the policy's safety buffer.
func RequiredGB(req estimate.ResourceRequirement, policy api.UsagePolicy) float64 {
	return req.EffectiveGB * (1 + policy.SafetyBufferFraction)
}

// Ranker orders offerings by hourly price, cheapest first.
type Ranker struct{}

// NewRanker creates a Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank retains offerings whose total memory meets RequiredGB and sorts
// them ascending by hourly price. Equal prices (within epsilon) are
// broken by ascending cost per GB, and remaining ties keep catalog
// insertion order. An empty result means no offering fits; the caller
// decides how to surface that, never falling back to the globally
// cheapest offering.
func (r *Ranker) Rank(req estimate.ResourceRequirement, offerings []catalog.Offering, policy api.UsagePolicy) []Candidate {
	required := RequiredGB(req, policy)

	candidates := make([]Candidate, 0, len(offerings))
	for _, o := range offerings {
		if o.TotalMemoryGB() < required {
			continue
		}
		candidates = append(candidates, Candidate{
			Offering:  o,
			Fits:      true,
			CostPerGB: o.HourlyPriceUSD / o.TotalMemoryGB(),
		})
	}

	// SliceStable keeps insertion order for full ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if !nearlyEqual(a.Offering.HourlyPriceUSD, b.Offering.HourlyPriceUSD) {
			return a.Offering.HourlyPriceUSD < b.Offering.HourlyPriceUSD
		}
		if !nearlyEqual(a.CostPerGB, b.CostPerGB) {
			return a.CostPerGB < b.CostPerGB
		}
		return false
	})

	return candidates
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= priceEpsilon
}
