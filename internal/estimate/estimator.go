// Package estimate infers the VRAM requirement of a project from its
// source artifacts.
package estimate

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/pkg/api"
)

const (
	// RuntimeHeadroomMultiplier covers the gap between a model's stated
	// size and its actual runtime footprint (activations, KV cache,
	// framework overhead). Applied at estimation time; the policy's
	// safety buffer is applied later, at fit-filtering time.
	RuntimeHeadroomMultiplier = 1.5

	// FloorGB is the conservative requirement assumed when nothing in
	// the project matches any known signature.
	FloorGB = 4.0
)

// ResourceRequirement is the estimator's output, immutable once built.
type ResourceRequirement struct {
	BaseFootprintGB  float64            `json:"base_footprint_gb"`
	BufferMultiplier float64            `json:"buffer_multiplier"`
	EffectiveGB      float64            `json:"effective_gb"`
	MatchedSignature *catalog.Signature `json:"matched_signature,omitempty"`
	// EvidenceArtifact is the path of the first artifact the winning
	// signature matched in; empty when nothing matched.
	EvidenceArtifact string `json:"evidence_artifact,omitempty"`
}

// Estimator scans project artifacts against the pattern catalog.
type Estimator struct {
	patterns *catalog.PatternCatalog
}

// NewEstimator creates an estimator over the given pattern catalog.
func NewEstimator(patterns *catalog.PatternCatalog) *Estimator {
	return &Estimator{patterns: patterns}
}

// Estimate resolves the dominant workload signature and applies the
// runtime headroom multiplier. The policy does not affect the estimate
// itself; its safety buffer is applied downstream at fit filtering.
//
// Signatures are tested in catalog order, which is sorted by descending
// footprint, so whenever several signatures match the largest known
// footprint wins regardless of which artifact is scanned first. Matching
// is case-insensitive substring matching: a token inside a comment is
// indistinguishable from a genuine usage, which is accepted imprecision.
func (e *Estimator) Estimate(signals api.ProjectSignals, policy api.UsagePolicy) ResourceRequirement {
	lowered := make([]string, len(signals.Artifacts))
	for i, a := range signals.Artifacts {
		lowered[i] = strings.ToLower(a.Content)
	}

	for _, sig := range e.patterns.AllSignatures() {
		for i, content := range lowered {
			if matchesAny(content, sig.Matchers) {
				sig := sig
				log.Debug().
					Str("signature", sig.ID).
					Str("artifact", signals.Artifacts[i].Path).
					Float64("base_gb", sig.BaseFootprintGB).
					Msg("workload signature matched")
				return ResourceRequirement{
					BaseFootprintGB:  sig.BaseFootprintGB,
					BufferMultiplier: RuntimeHeadroomMultiplier,
					EffectiveGB:      sig.BaseFootprintGB * RuntimeHeadroomMultiplier,
					MatchedSignature: &sig,
					EvidenceArtifact: signals.Artifacts[i].Path,
				}
			}
		}
	}

	log.Debug().Float64("floor_gb", FloorGB).Msg("no signature matched, using floor")
	return ResourceRequirement{
		BaseFootprintGB:  FloorGB,
		BufferMultiplier: RuntimeHeadroomMultiplier,
		EffectiveGB:      FloorGB * RuntimeHeadroomMultiplier,
	}
}

func matchesAny(content string, matchers []string) bool {
	for _, m := range matchers {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}
