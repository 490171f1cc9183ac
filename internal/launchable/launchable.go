// Package launchable renders the launchable.yaml deployment config with
// stable key ordering.
package launchable

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FileName = "launchable.yaml"

	DefaultPythonVersion  = "3.10"
	DefaultNotebookPort   = 8888
	DefaultWebappPort     = 7860
	DefaultNotebookCmd    = "jupyter lab --ip=0.0.0.0 --port=8888 --no-browser"
	DefaultWebappCmd      = "python app.py"
	DefaultGPU            = "any"
	DefaultGPUNote        = "Select lowest-cost GPU in Brev UI"
	defaultInstallComment = "# No dependency file found - add install commands here"
)

// Config is the launchable.yaml document. Field order here is the key
// order in the rendered file.
type Config struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Source      SourceConfig  `yaml:"source"`
	Runtime     RuntimeConfig `yaml:"runtime"`
	Compute     ComputeConfig `yaml:"compute"`
	Networking  Networking    `yaml:"networking"`
	Files       FilesConfig   `yaml:"files"`
	Metadata    Metadata      `yaml:"metadata"`
}

type SourceConfig struct {
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
	Ref  string `yaml:"ref"`
	Path string `yaml:"path"`
}

type RuntimeConfig struct {
	Mode  string      `yaml:"mode"`
	Setup SetupConfig `yaml:"setup"`
	Start StartConfig `yaml:"start"`
}

type SetupConfig struct {
	PythonVersion string `yaml:"python_version"`
	Install       string `yaml:"install"`
}

type StartConfig struct {
	Notebook *NotebookConfig `yaml:"notebook,omitempty"`
	Webapp   *WebappConfig   `yaml:"webapp,omitempty"`
}

type NotebookConfig struct {
	EnableJupyter bool   `yaml:"enable_jupyter"`
	Command       string `yaml:"command"`
	Port          int    `yaml:"port"`
}

type WebappConfig struct {
	ExposePort int    `yaml:"expose_port"`
	Command    string `yaml:"command"`
}

type ComputeConfig struct {
	GPU  string `yaml:"gpu"`
	Note string `yaml:"note"`
}

type Networking struct {
	Ports []int `yaml:"ports"`
}

type FilesConfig struct {
	Include []string `yaml:"include"`
}

type Metadata struct {
	GeneratedBy string `yaml:"generated_by"`
	GeneratedAt string `yaml:"generated_at"`
}

// New builds a config with project identity filled in and every other
// section at its defaults.
func New(name, description string, source SourceConfig) *Config {
	return &Config{
		Name:        name,
		Description: description,
		Source:      source,
		Runtime: RuntimeConfig{
			Mode: "vm",
			Setup: SetupConfig{
				PythonVersion: DefaultPythonVersion,
				Install:       defaultInstallComment,
			},
		},
		Compute: ComputeConfig{GPU: DefaultGPU, Note: DefaultGPUNote},
		Files:   FilesConfig{Include: []string{"."}},
		Metadata: Metadata{
			GeneratedBy: "brev-launcher",
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// WithInstall sets the dependency install command.
func (c *Config) WithInstall(command string) *Config {
	c.Runtime.Setup.Install = command
	return c
}

// WithGPU records the chosen offering identifier and a note about how it
// was selected.
func (c *Config) WithGPU(gpu, note string) *Config {
	c.Compute.GPU = gpu
	c.Compute.Note = note
	return c
}

// WithNotebook configures notebook mode on the given port.
func (c *Config) WithNotebook(command string, port int) *Config {
	c.Runtime.Start = StartConfig{Notebook: &NotebookConfig{
		EnableJupyter: true,
		Command:       command,
		Port:          port,
	}}
	c.Networking.Ports = append(c.Networking.Ports, port)
	return c
}

// WithWebapp configures webapp mode on the given port.
func (c *Config) WithWebapp(command string, port int) *Config {
	c.Runtime.Start = StartConfig{Webapp: &WebappConfig{
		ExposePort: port,
		Command:    command,
	}}
	c.Networking.Ports = append(c.Networking.Ports, port)
	return c
}

// Render marshals the config to YAML.
func (c *Config) Render() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("render launchable config: %w", err)
	}
	return data, nil
}

// Write renders the config into dir/launchable.yaml and returns the
// written path.
func (c *Config) Write(dir string) (string, error) {
	data, err := c.Render()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", FileName, err)
	}
	return path, nil
}
