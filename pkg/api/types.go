// Package api defines the shared types exchanged between the launcher's
// collaborators and the recommendation engine.
package api

import "fmt"

// Artifact is one text-bearing file from the scanned project.
type Artifact struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ProjectSignals is the bundle of artifacts the estimator works from.
// It is produced by the filesystem scanner and read-only to the engine.
type ProjectSignals struct {
	Artifacts []Artifact `json:"artifacts"`
}

// UsagePolicy is the caller-supplied configuration surface of the engine.
type UsagePolicy struct {
	// HoursPerDay is the assumed daily usage for cost projection.
	HoursPerDay float64 `json:"hours_per_day" yaml:"hours_per_day"`
	// SafetyBufferFraction widens the requirement before fit filtering,
	// absorbing catalog and measurement uncertainty.
	SafetyBufferFraction float64 `json:"safety_buffer_fraction" yaml:"safety_buffer_fraction"`
	// AlternativesCap bounds the number of runner-up offerings returned.
	AlternativesCap int `json:"alternatives_cap" yaml:"alternatives_cap"`
	// AdvancedCatalog selects the full multi-provider offering table
	// instead of the small curated one.
	AdvancedCatalog bool `json:"advanced_catalog" yaml:"advanced_catalog"`
}

// DefaultUsagePolicy returns the always-on, 20%-buffer, top-10 policy.
func DefaultUsagePolicy() UsagePolicy {
	return UsagePolicy{
		HoursPerDay:          24,
		SafetyBufferFraction: 0.20,
		AlternativesCap:      10,
	}
}

// Validate rejects policies the engine must not compute with.
func (p UsagePolicy) Validate() error {
	if p.HoursPerDay <= 0 {
		return fmt.Errorf("hours_per_day must be positive, got %v", p.HoursPerDay)
	}
	if p.SafetyBufferFraction < 0 || p.SafetyBufferFraction > 1 {
		return fmt.Errorf("safety_buffer_fraction must be in [0, 1], got %v", p.SafetyBufferFraction)
	}
	if p.AlternativesCap < 1 {
		return fmt.Errorf("alternatives_cap must be at least 1, got %d", p.AlternativesCap)
	}
	return nil
}
