package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSignatureOrdering(t *testing.T) {
	sigs := NewPatternCatalog().AllSignatures()
	require.NotEmpty(t, sigs)

	for i := 1; i < len(sigs); i++ {
		prev, cur := sigs[i-1], sigs[i]
		assert.GreaterOrEqual(t, prev.BaseFootprintGB, cur.BaseFootprintGB,
			"%s must not come after the smaller %s", prev.ID, cur.ID)
		if prev.BaseFootprintGB == cur.BaseFootprintGB {
			// Multi-matcher entries are the more specific ones and go first.
			if len(prev.Matchers) == 1 {
				assert.Len(t, cur.Matchers, 1,
					"multi-matcher %s must precede single-matcher %s", cur.ID, prev.ID)
			}
		}
	}
}

func TestFallbackSignatureIsLast(t *testing.T) {
	sigs := NewPatternCatalog().AllSignatures()
	last := sigs[len(sigs)-1]
	assert.Equal(t, CategoryFallback, last.Category)
	assert.Equal(t, 4.0, last.BaseFootprintGB)

	for _, sig := range sigs[:len(sigs)-1] {
		assert.NotEqual(t, CategoryFallback, sig.Category, "only the last entry may be the fallback")
	}
}

func TestStableDiffusionSignature(t *testing.T) {
	var found *Signature
	for _, sig := range NewPatternCatalog().AllSignatures() {
		if sig.ID == "stable-diffusion-1.5" {
			sig := sig
			found = &sig
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 6.0, found.BaseFootprintGB)
	assert.Equal(t, CategoryImage, found.Category)
	assert.Contains(t, found.Matchers, "stablediffusionpipeline")
}

func TestNewPatternCatalogFromPreservesOrder(t *testing.T) {
	custom := []Signature{
		{ID: "big", BaseFootprintGB: 100, Matchers: []string{"big"}},
		{ID: "small", BaseFootprintGB: 1, Matchers: []string{"small"}},
	}
	got := NewPatternCatalogFrom(custom).AllSignatures()
	require.Len(t, got, 2)
	assert.Equal(t, "big", got[0].ID)
	assert.Equal(t, "small", got[1].ID)
}
