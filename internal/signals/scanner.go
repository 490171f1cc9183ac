// Package signals scans a project directory and produces the artifact
// bundle and metadata the engine and config generator consume.
package signals

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/demirreren/brev-launcher/pkg/api"
)

const (
	ProjectTypeNotebook = "notebook"
	ProjectTypeWebapp   = "webapp"

	// maxArtifactBytes caps how much of a file is offered to the
	// estimator; model identifiers show up early in real sources.
	maxArtifactBytes = 1 << 20
)

var (
	notebookEntryFiles = []string{"main.ipynb", "notebook.ipynb", "demo.ipynb"}
	webappEntryFiles   = []string{"app.py", "main.py", "server.py", "api.py"}

	commonAppPorts = map[int]bool{
		7860: true, 8000: true, 8080: true, 5000: true,
		3000: true, 8501: true, 8502: true,
	}

	portPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)port\s*=\s*(\d+)`),
		regexp.MustCompile(`--port[=\s]+(\d+)`),
		regexp.MustCompile(`:(\d{4})`),
	}

	textExtensions = map[string]bool{
		".py": true, ".ipynb": true, ".txt": true, ".toml": true,
		".cfg": true, ".yaml": true, ".yml": true, ".json": true,
		".md": true, ".sh": true,
	}

	skippedDirs = map[string]bool{
		".git": true, "node_modules": true, "__pycache__": true,
		".venv": true, "venv": true, ".mypy_cache": true,
	}
)

// Scan is the full result of scanning one project directory.
type Scan struct {
	Path               string
	Signals            api.ProjectSignals
	DependencyFile     string
	EntryFile          string
	ProjectType        string
	InstallCommand     string
	HasEnvExample      bool
	HasNotebooksFolder bool
	DetectedPorts      []int
	SkippedFiles       int
}

// ScanProject walks the project tree, reading text-bearing files into
// artifacts. Unreadable files and obvious binaries are skipped and
// counted, never fatal.
func ScanProject(root string) (*Scan, error) {
	s := &Scan{Path: root}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.SkippedFiles++
			return nil
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !textExtensions[filepath.Ext(d.Name())] {
			return nil
		}
		content, ok := readArtifact(path)
		if !ok {
			s.SkippedFiles++
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		s.Signals.Artifacts = append(s.Signals.Artifacts, api.Artifact{Path: rel, Content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.DependencyFile = detectDependencyFile(root)
	s.InstallCommand = installCommand(s.DependencyFile)
	s.ProjectType = inferProjectType(root)
	s.EntryFile = detectEntryFile(root, s.ProjectType)
	s.HasEnvExample = fileExists(filepath.Join(root, ".env.example"))
	s.HasNotebooksFolder = dirExists(filepath.Join(root, "notebooks"))
	s.DetectedPorts = detectPorts(s.Signals)

	log.Debug().
		Int("artifacts", len(s.Signals.Artifacts)).
		Int("skipped", s.SkippedFiles).
		Str("type", s.ProjectType).
		Msg("project scan complete")
	return s, nil
}

func readArtifact(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if len(data) > maxArtifactBytes {
		data = data[:maxArtifactBytes]
	}
	// A null byte marks the file as binary despite its extension.
	if bytes.IndexByte(data, 0) >= 0 {
		return "", false
	}
	return string(data), true
}

func detectDependencyFile(root string) string {
	for _, name := range []string{"requirements.txt", "pyproject.toml"} {
		if fileExists(filepath.Join(root, name)) {
			return name
		}
	}
	return ""
}

func installCommand(dependencyFile string) string {
	switch dependencyFile {
	case "requirements.txt":
		return "pip install -r requirements.txt"
	case "pyproject.toml":
		return "pip install ."
	default:
		return "# No dependency file found - add install commands here"
	}
}

func inferProjectType(root string) string {
	if hasGlob(root, "*.ipynb") {
		return ProjectTypeNotebook
	}
	for _, entry := range webappEntryFiles {
		if fileExists(filepath.Join(root, entry)) {
			return ProjectTypeWebapp
		}
	}
	return ProjectTypeNotebook
}

func detectEntryFile(root, projectType string) string {
	if projectType == ProjectTypeNotebook {
		for _, name := range notebookEntryFiles {
			if fileExists(filepath.Join(root, name)) {
				return name
			}
		}
		return firstGlob(root, "*.ipynb")
	}
	for _, name := range webappEntryFiles {
		if fileExists(filepath.Join(root, name)) {
			return name
		}
	}
	return firstGlob(root, "*.py")
}

// detectPorts pulls recognizable app ports out of already-read sources.
func detectPorts(signals api.ProjectSignals) []int {
	found := map[int]bool{}
	for _, a := range signals.Artifacts {
		if filepath.Ext(a.Path) != ".py" {
			continue
		}
		for _, re := range portPatterns {
			for _, m := range re.FindAllStringSubmatch(a.Content, -1) {
				port, err := strconv.Atoi(m[1])
				if err == nil && commonAppPorts[port] {
					found[port] = true
				}
			}
		}
	}
	ports := make([]int, 0, len(found))
	for p := range found {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasGlob(root, pattern string) bool {
	return firstGlob(root, pattern) != ""
}

func firstGlob(root, pattern string) string {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	for _, m := range matches {
		name := filepath.Base(m)
		if strings.HasPrefix(name, "test_") || name == "__init__.py" {
			continue
		}
		return name
	}
	return ""
}
