// Package device queries the current machine's GPU so the engine can
// compare recommendations against what the caller already runs on.
package device

import (
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/demirreren/brev-launcher/internal/catalog"
)

// Info describes the current accelerator, when one is visible.
type Info struct {
	Available bool
	GPUName   string
	MemoryGB  float64
}

// Detect queries nvidia-smi. Absent hardware or a missing binary yields
// an unavailable Info, never an error.
func Detect() Info {
	out, err := exec.Command(
		"nvidia-smi",
		"--query-gpu=name,memory.total",
		"--format=csv,noheader,nounits",
	).Output()
	if err != nil {
		return Info{}
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	name, mem, ok := splitCSV(line)
	if !ok {
		return Info{}
	}
	memMiB, err := strconv.ParseFloat(mem, 64)
	if err != nil {
		return Info{Available: true, GPUName: name}
	}
	info := Info{Available: true, GPUName: name, MemoryGB: memMiB / 1024}
	log.Debug().Str("gpu", info.GPUName).Float64("memory_gb", info.MemoryGB).Msg("detected GPU")
	return info
}

// BaselineOffering maps the detected device onto a catalog offering so
// savings can be computed. Returns nil when no catalog entry matches.
func BaselineOffering(info Info, cat *catalog.OfferingCatalog) *catalog.Offering {
	if !info.Available || info.GPUName == "" {
		return nil
	}
	name := strings.ToUpper(info.GPUName)
	singles := make([]catalog.Offering, 0)
	for _, o := range cat.AllOfferings() {
		if o.UnitCount == 1 {
			singles = append(singles, o)
		}
	}
	// Longest model name first, so "A100" cannot shadow-match an "A10".
	sort.SliceStable(singles, func(i, j int) bool {
		return len(singles[i].AcceleratorModel) > len(singles[j].AcceleratorModel)
	})
	for _, o := range singles {
		if strings.Contains(name, strings.ToUpper(o.AcceleratorModel)) {
			o := o
			return &o
		}
	}
	return nil
}

// BrevInfo reports whether the Brev CLI is installed and, best-effort,
// which instance it is signed into.
type BrevInfo struct {
	Available    bool
	InstanceName string
}

// DetectBrevCLI looks for the brev binary and the current instance.
// Absence is an ordinary outcome, never an error.
func DetectBrevCLI() BrevInfo {
	if _, err := exec.LookPath("brev"); err != nil {
		return BrevInfo{}
	}
	info := BrevInfo{Available: true}
	out, err := exec.Command("brev", "ls").Output()
	if err != nil {
		return info
	}
	info.InstanceName = currentInstance(string(out))
	return info
}

// currentInstance picks the active instance name out of `brev ls`
// output. The format is not a stable contract, so parsing is best-effort
// and an empty result is fine.
func currentInstance(listing string) string {
	for _, line := range strings.Split(listing, "\n") {
		upper := strings.ToUpper(line)
		if !strings.Contains(line, "*") && !strings.Contains(upper, "RUNNING") {
			continue
		}
		for _, part := range strings.Fields(line) {
			switch strings.ToUpper(part) {
			case "*", "RUNNING", "STOPPED", "CREATING":
				continue
			}
			return part
		}
	}
	return ""
}

func splitCSV(line string) (name, mem string, ok bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
