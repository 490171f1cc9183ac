// Package recommend composes estimation, ranking and cost projection
// into a single recommendation pass.
package recommend

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/internal/cost"
	"github.com/demirreren/brev-launcher/internal/estimate"
	"github.com/demirreren/brev-launcher/internal/rank"
	"github.com/demirreren/brev-launcher/pkg/api"
)

// ErrInvalidPolicy marks a policy rejected before any computation.
var ErrInvalidPolicy = errors.New("invalid usage policy")

// NoFitError reports that no catalog offering meets the buffered
// requirement. It carries the threshold so callers can explain why.
type NoFitError struct {
	RequiredGB float64
}

func (e *NoFitError) Error() string {
	return fmt.Sprintf("no offering in the catalog has at least %.1f GB of total memory", e.RequiredGB)
}

// Result is the engine's output, produced once per invocation and
// immutable afterwards.
type Result struct {
	Requirement  estimate.ResourceRequirement `json:"requirement"`
	Baseline     *catalog.Offering            `json:"baseline,omitempty"`
	Best         rank.Candidate               `json:"best"`
	Alternatives []rank.Candidate             `json:"alternatives"`
	Projection   cost.Projection              `json:"projection"`
	// Savings is nil when no baseline was supplied: "no comparison
	// requested" is distinct from "zero savings".
	Savings *cost.Projection `json:"savings,omitempty"`
}

// Engine is a pure, deterministic function of (signals, catalogs,
// policy). It holds no mutable state and performs no I/O.
type Engine struct {
	estimator *estimate.Estimator
	ranker    *rank.Ranker
	projector *cost.Projector
	offerings *catalog.OfferingCatalog
}

// NewEngine wires the engine against injected catalogs.
func NewEngine(patterns *catalog.PatternCatalog, offerings *catalog.OfferingCatalog) *Engine {
	return &Engine{
		estimator: estimate.NewEstimator(patterns),
		ranker:    rank.NewRanker(),
		projector: cost.NewProjector(),
		offerings: offerings,
	}
}

// Recommend estimates the project's requirement, ranks the catalog
// against it, and projects costs for the winner. A nil baseline omits
// the savings comparison. Returns *NoFitError when nothing fits and a
// wrapped ErrInvalidPolicy for unusable policies.
func (e *Engine) Recommend(signals api.ProjectSignals, baseline *catalog.Offering, policy api.UsagePolicy) (*Result, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	req := e.estimator.Estimate(signals, policy)

	ranked := e.ranker.Rank(req, e.offerings.AllOfferings(), policy)
	if len(ranked) == 0 {
		return nil, &NoFitError{RequiredGB: rank.RequiredGB(req, policy)}
	}

	best := ranked[0]
	alternatives := ranked[1:]
	if len(alternatives) > policy.AlternativesCap {
		alternatives = alternatives[:policy.AlternativesCap]
	}

	result := &Result{
		Requirement:  req,
		Baseline:     baseline,
		Best:         best,
		Alternatives: alternatives,
		Projection:   e.projector.Project(best.Offering, policy),
	}
	if baseline != nil {
		savings := e.projector.Savings(*baseline, best.Offering, policy)
		result.Savings = &savings
	}

	log.Debug().
		Str("best", best.Offering.Name()).
		Int("alternatives", len(alternatives)).
		Float64("effective_gb", req.EffectiveGB).
		Msg("recommendation assembled")
	return result, nil
}
