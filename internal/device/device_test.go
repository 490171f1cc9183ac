package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirreren/brev-launcher/internal/catalog"
)

func TestBaselineOfferingMatchesDetectedGPU(t *testing.T) {
	cat := catalog.NewCuratedCatalog()

	baseline := BaselineOffering(Info{Available: true, GPUName: "NVIDIA A10G", MemoryGB: 24}, cat)
	require.NotNil(t, baseline)
	assert.Equal(t, "A10", baseline.AcceleratorModel)
}

func TestBaselineOfferingPrefersLongerModelNames(t *testing.T) {
	// "A100" must not shadow-match the shorter "A10" entry.
	cat := catalog.NewCuratedCatalog()

	baseline := BaselineOffering(Info{Available: true, GPUName: "NVIDIA A100-SXM4-40GB", MemoryGB: 40}, cat)
	require.NotNil(t, baseline)
	assert.Equal(t, "A100", baseline.AcceleratorModel)
}

func TestBaselineOfferingUnknownGPU(t *testing.T) {
	cat := catalog.NewCuratedCatalog()
	assert.Nil(t, BaselineOffering(Info{Available: true, GPUName: "Radeon RX 7900"}, cat))
	assert.Nil(t, BaselineOffering(Info{}, cat))
}

func TestCurrentInstance(t *testing.T) {
	listing := "NAME         STATUS\nidle-box     STOPPED\n* gpu-box    RUNNING\n"
	assert.Equal(t, "gpu-box", currentInstance(listing))

	assert.Equal(t, "worker-1", currentInstance("worker-1  RUNNING\n"))
	assert.Empty(t, currentInstance("idle-box  STOPPED\n"))
	assert.Empty(t, currentInstance(""))
}

func TestSplitCSV(t *testing.T) {
	name, mem, ok := splitCSV("NVIDIA T4, 15360")
	require.True(t, ok)
	assert.Equal(t, "NVIDIA T4", name)
	assert.Equal(t, "15360", mem)

	_, _, ok = splitCSV("garbage")
	assert.False(t, ok)
}
