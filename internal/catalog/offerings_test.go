package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferingTotalMemoryAndName(t *testing.T) {
	o := Offering{Provider: "HYPERSTACK", AcceleratorModel: "H100", UnitCount: 2, MemoryPerUnitGB: 80, HourlyPriceUSD: 4.56}
	assert.Equal(t, 160.0, o.TotalMemoryGB())
	assert.Equal(t, "2x H100 (HYPERSTACK)", o.Name())

	single := Offering{Provider: "BREV", AcceleratorModel: "T4", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.40}
	assert.Equal(t, "T4 (BREV)", single.Name())
}

func TestNewOfferingCatalogDropsMalformedRecords(t *testing.T) {
	records := []Offering{
		{Provider: "OK", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.65},
		{Provider: "BAD", AcceleratorModel: "X", UnitCount: 0, MemoryPerUnitGB: 24, HourlyPriceUSD: 1},
		{Provider: "BAD", AcceleratorModel: "Y", UnitCount: 1, MemoryPerUnitGB: 0, HourlyPriceUSD: 1},
		{Provider: "BAD", AcceleratorModel: "Z", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: -0.5},
		{Provider: "OK", AcceleratorModel: "T4", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.40},
	}
	cat := NewOfferingCatalog(records)
	assert.Equal(t, 3, cat.Dropped())
	require.Len(t, cat.AllOfferings(), 2)
	// Surviving records keep insertion order.
	assert.Equal(t, "A10", cat.AllOfferings()[0].AcceleratorModel)
	assert.Equal(t, "T4", cat.AllOfferings()[1].AcceleratorModel)
}

func TestParseOfferingCatalog(t *testing.T) {
	data := []byte(`
offerings:
  - provider: BREV
    gpu_model: T4
    gpus: 1
    vram_per_gpu_gb: 16
    price_per_hour: 0.40
  - provider: BREV
    gpu_model: BROKEN
    gpus: 0
    vram_per_gpu_gb: 16
    price_per_hour: 0.40
`)
	cat, err := ParseOfferingCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Dropped())
	require.Len(t, cat.AllOfferings(), 1)
	assert.Equal(t, "T4", cat.AllOfferings()[0].AcceleratorModel)
}

func TestParseOfferingCatalogRejectsGarbage(t *testing.T) {
	_, err := ParseOfferingCatalog([]byte("{not yaml: ["))
	assert.Error(t, err)
}

func TestBuiltinCatalogsAreClean(t *testing.T) {
	curated := NewCuratedCatalog()
	assert.Zero(t, curated.Dropped())
	assert.Len(t, curated.AllOfferings(), 6)

	advanced := NewAdvancedCatalog()
	assert.Zero(t, advanced.Dropped())
	assert.Greater(t, len(advanced.AllOfferings()), len(curated.AllOfferings()))
	for _, o := range advanced.AllOfferings() {
		assert.NoError(t, o.Validate(), "offering %s", o.Name())
	}
}

func TestFilterByAccelerator(t *testing.T) {
	advanced := NewAdvancedCatalog()
	h100s := advanced.FilterByAccelerator("H100")
	require.NotEmpty(t, h100s)
	for _, o := range h100s {
		assert.Equal(t, "H100", o.AcceleratorModel)
	}
	assert.Empty(t, advanced.FilterByAccelerator("TPU-V5"))
}
