// Package cost converts hourly offering prices into monthly and yearly
// figures and computes savings deltas against a baseline.
package cost

import (
	"github.com/shopspring/decimal"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/pkg/api"
)

const (
	daysPerMonth = 30
	daysPerYear  = 365
)

// Projection holds full-precision cost figures for one offering under a
// usage assumption. Display rounding is the presentation layer's job.
type Projection struct {
	HourlyUSD  decimal.Decimal `json:"hourly_usd"`
	MonthlyUSD decimal.Decimal `json:"monthly_usd"`
	YearlyUSD  decimal.Decimal `json:"yearly_usd"`
}

// Projector performs cost arithmetic. Pure, no rounding.
type Projector struct{}

// NewProjector creates a Projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Project computes hourly, monthly and yearly cost for an offering under
// the policy's hours-per-day assumption.
func (p *Projector) Project(o catalog.Offering, policy api.UsagePolicy) Projection {
	hourly := decimal.NewFromFloat(o.HourlyPriceUSD)
	daily := hourly.Mul(decimal.NewFromFloat(policy.HoursPerDay))
	return Projection{
		HourlyUSD:  hourly,
		MonthlyUSD: daily.Mul(decimal.NewFromInt(daysPerMonth)),
		YearlyUSD:  daily.Mul(decimal.NewFromInt(daysPerYear)),
	}
}

// Savings is the per-period delta between baseline and candidate.
// Negative when the candidate costs more than the baseline; the delta is
// reported truthfully, never clamped to zero.
func (p *Projector) Savings(baseline, candidate catalog.Offering, policy api.UsagePolicy) Projection {
	b := p.Project(baseline, policy)
	c := p.Project(candidate, policy)
	return Projection{
		HourlyUSD:  b.HourlyUSD.Sub(c.HourlyUSD),
		MonthlyUSD: b.MonthlyUSD.Sub(c.MonthlyUSD),
		YearlyUSD:  b.YearlyUSD.Sub(c.YearlyUSD),
	}
}
