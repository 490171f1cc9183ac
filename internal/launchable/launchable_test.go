package launchable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func demoConfig() *Config {
	return New(
		"stable-diffusion-demo",
		"stable-diffusion-demo - deployed via Brev Launchables",
		SourceConfig{Type: "git", URL: "https://github.com/user/stable-diffusion-demo", Ref: "main", Path: "/"},
	)
}

func TestRenderKeyOrderIsStable(t *testing.T) {
	data, err := demoConfig().
		WithInstall("pip install -r requirements.txt").
		WithGPU("T4 (BREV)", "Cheapest fit for 9.0 GB VRAM requirement").
		WithWebapp(DefaultWebappCmd, DefaultWebappPort).
		Render()
	require.NoError(t, err)

	text := string(data)
	order := []string{"name:", "description:", "source:", "runtime:", "compute:", "networking:", "files:", "metadata:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, "\n"+key)
		if key == "name:" {
			idx = strings.Index(text, key)
		}
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
	assert.Contains(t, text, "gpu: T4 (BREV)")
	assert.Contains(t, text, "expose_port: 7860")
	assert.NotContains(t, text, "notebook:", "webapp mode must omit the notebook section")
}

func TestRenderNotebookMode(t *testing.T) {
	data, err := demoConfig().WithNotebook(DefaultNotebookCmd, DefaultNotebookPort).Render()
	require.NoError(t, err)

	var doc struct {
		Runtime struct {
			Start struct {
				Notebook *NotebookConfig `yaml:"notebook"`
				Webapp   *WebappConfig   `yaml:"webapp"`
			} `yaml:"start"`
		} `yaml:"runtime"`
		Networking Networking `yaml:"networking"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotNil(t, doc.Runtime.Start.Notebook)
	assert.Nil(t, doc.Runtime.Start.Webapp)
	assert.True(t, doc.Runtime.Start.Notebook.EnableJupyter)
	assert.Equal(t, DefaultNotebookPort, doc.Runtime.Start.Notebook.Port)
	assert.Equal(t, []int{DefaultNotebookPort}, doc.Networking.Ports)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path, err := demoConfig().WithNotebook(DefaultNotebookCmd, DefaultNotebookPort).Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generated_by: brev-launcher")
}
