package catalog

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Offering is one priced compute configuration. Static data, never
// mutated after load.
type Offering struct {
	Provider         string  `json:"provider" yaml:"provider"`
	AcceleratorModel string  `json:"gpu_model" yaml:"gpu_model"`
	UnitCount        int     `json:"gpus" yaml:"gpus"`
	MemoryPerUnitGB  float64 `json:"vram_per_gpu_gb" yaml:"vram_per_gpu_gb"`
	HourlyPriceUSD   float64 `json:"price_per_hour" yaml:"price_per_hour"`
}

// TotalMemoryGB is the aggregate VRAM across all units.
func (o Offering) TotalMemoryGB() float64 {
	return float64(o.UnitCount) * o.MemoryPerUnitGB
}

// Name renders a display identifier like "2x H100 (HYPERSTACK)".
func (o Offering) Name() string {
	if o.UnitCount == 1 {
		return fmt.Sprintf("%s (%s)", o.AcceleratorModel, o.Provider)
	}
	return fmt.Sprintf("%dx %s (%s)", o.UnitCount, o.AcceleratorModel, o.Provider)
}

// Validate reports why an offering record is unusable.
func (o Offering) Validate() error {
	if o.UnitCount < 1 {
		return fmt.Errorf("gpus must be at least 1, got %d", o.UnitCount)
	}
	if o.MemoryPerUnitGB <= 0 {
		return fmt.Errorf("vram_per_gpu_gb must be positive, got %v", o.MemoryPerUnitGB)
	}
	if o.HourlyPriceUSD <= 0 {
		return fmt.Errorf("price_per_hour must be positive, got %v", o.HourlyPriceUSD)
	}
	return nil
}

// OfferingCatalog is an ordered, immutable list of offerings. Insertion
// order is the final ranking tie-break, so it is preserved as loaded.
type OfferingCatalog struct {
	offerings []Offering
	dropped   int
}

// NewOfferingCatalog validates a record sequence, dropping malformed
// entries instead of failing the whole load.
func NewOfferingCatalog(records []Offering) *OfferingCatalog {
	c := &OfferingCatalog{offerings: make([]Offering, 0, len(records))}
	for _, o := range records {
		if err := o.Validate(); err != nil {
			c.dropped++
			log.Warn().
				Str("offering", o.Name()).
				Err(err).
				Msg("dropping malformed offering record")
			continue
		}
		c.offerings = append(c.offerings, o)
	}
	return c
}

// NewCuratedCatalog returns the small single-GPU catalog.
func NewCuratedCatalog() *OfferingCatalog {
	return NewOfferingCatalog(curatedOfferings)
}

// NewAdvancedCatalog returns the full multi-provider catalog.
func NewAdvancedCatalog() *OfferingCatalog {
	return NewOfferingCatalog(advancedOfferings)
}

// LoadOfferingCatalog reads a catalog from a YAML file. Malformed records
// are dropped and counted; an unreadable or unparsable file is fatal.
func LoadOfferingCatalog(path string) (*OfferingCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read offering catalog: %w", err)
	}
	return ParseOfferingCatalog(data)
}

// ParseOfferingCatalog parses YAML catalog bytes.
func ParseOfferingCatalog(data []byte) (*OfferingCatalog, error) {
	var doc struct {
		Offerings []Offering `yaml:"offerings"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse offering catalog: %w", err)
	}
	return NewOfferingCatalog(doc.Offerings), nil
}

// AllOfferings returns every valid offering in insertion order.
func (c *OfferingCatalog) AllOfferings() []Offering {
	return c.offerings
}

// Dropped is the count of malformed records removed at load time.
func (c *OfferingCatalog) Dropped() int {
	return c.dropped
}

// FilterByAccelerator returns offerings for one GPU model, preserving
// catalog order.
func (c *OfferingCatalog) FilterByAccelerator(model string) []Offering {
	var out []Offering
	for _, o := range c.offerings {
		if o.AcceleratorModel == model {
			out = append(out, o)
		}
	}
	return out
}

// curatedOfferings is the compact single-GPU table, one row per
// accelerator tier.
var curatedOfferings = []Offering{
	{Provider: "BREV", AcceleratorModel: "T4", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.40},
	{Provider: "BREV", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.90},
	{Provider: "BREV", AcceleratorModel: "V100", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 1.50},
	{Provider: "BREV", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 40, HourlyPriceUSD: 2.50},
	{Provider: "BREV", AcceleratorModel: "A100 80GB", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 3.00},
	{Provider: "BREV", AcceleratorModel: "H100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 4.00},
}
