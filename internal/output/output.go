// Package output renders recommendation results for the terminal in the
// launcher's three formats. All display rounding happens here.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/demirreren/brev-launcher/internal/recommend"
	"github.com/demirreren/brev-launcher/pkg/api"
)

// JSONResult is the machine-readable shape of a recommendation, with
// money rendered as fixed-point strings.
type JSONResult struct {
	MatchedSignature string          `json:"matched_signature,omitempty"`
	EvidenceArtifact string          `json:"evidence_artifact,omitempty"`
	BaseFootprintGB  float64         `json:"base_footprint_gb"`
	EffectiveGB      float64         `json:"effective_gb"`
	Recommended      JSONOffering    `json:"recommended"`
	MonthlyUSD       string          `json:"monthly_usd"`
	YearlyUSD        string          `json:"yearly_usd"`
	MonthlySavings   string          `json:"monthly_savings_usd,omitempty"`
	YearlySavings    string          `json:"yearly_savings_usd,omitempty"`
	Baseline         string          `json:"baseline,omitempty"`
	Alternatives     []JSONOffering  `json:"alternatives"`
	Policy           api.UsagePolicy `json:"policy"`
}

// JSONOffering is one offering row in JSON output.
type JSONOffering struct {
	Name          string  `json:"name"`
	TotalMemoryGB float64 `json:"total_memory_gb"`
	PricePerHour  float64 `json:"price_per_hour_usd"`
	CostPerGB     float64 `json:"cost_per_gb"`
}

// RenderJSON writes the result as indented JSON.
func RenderJSON(w io.Writer, res *recommend.Result, policy api.UsagePolicy) error {
	out := JSONResult{
		EvidenceArtifact: res.Requirement.EvidenceArtifact,
		BaseFootprintGB:  res.Requirement.BaseFootprintGB,
		EffectiveGB:      res.Requirement.EffectiveGB,
		Recommended:      toJSONOffering(res.Best.Offering.Name(), res.Best.Offering.TotalMemoryGB(), res.Best.Offering.HourlyPriceUSD, res.Best.CostPerGB),
		MonthlyUSD:       res.Projection.MonthlyUSD.StringFixed(2),
		YearlyUSD:        res.Projection.YearlyUSD.StringFixed(2),
		Policy:           policy,
	}
	if res.Requirement.MatchedSignature != nil {
		out.MatchedSignature = res.Requirement.MatchedSignature.ID
	}
	if res.Baseline != nil {
		out.Baseline = res.Baseline.Name()
	}
	if res.Savings != nil {
		out.MonthlySavings = res.Savings.MonthlyUSD.StringFixed(2)
		out.YearlySavings = res.Savings.YearlyUSD.StringFixed(2)
	}
	for _, alt := range res.Alternatives {
		out.Alternatives = append(out.Alternatives, toJSONOffering(
			alt.Offering.Name(), alt.Offering.TotalMemoryGB(), alt.Offering.HourlyPriceUSD, alt.CostPerGB))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONOffering(name string, mem, price, costPerGB float64) JSONOffering {
	return JSONOffering{Name: name, TotalMemoryGB: mem, PricePerHour: price, CostPerGB: costPerGB}
}

// RenderTable writes the box-drawing summary used by the default CLI
// output.
func RenderTable(w io.Writer, res *recommend.Result, policy api.UsagePolicy) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║                 🎯 GPU RECOMMENDATION                         ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
	if sig := res.Requirement.MatchedSignature; sig != nil {
		fmt.Fprintf(w, "║  Detected workload:     %-37s ║\n", sig.ID)
		if res.Requirement.EvidenceArtifact != "" {
			fmt.Fprintf(w, "║  Evidence:              %-37s ║\n", truncate(res.Requirement.EvidenceArtifact, 37))
		}
	} else {
		fmt.Fprintf(w, "║  Detected workload:     %-37s ║\n", "none (conservative floor)")
	}
	fmt.Fprintf(w, "║  VRAM required:         %-37s ║\n", fmt.Sprintf("%.1f GB (base %.1f GB × %.1f)",
		res.Requirement.EffectiveGB, res.Requirement.BaseFootprintGB, res.Requirement.BufferMultiplier))
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
	fmt.Fprintf(w, "║  Recommended:           %-37s ║\n", truncate(res.Best.Offering.Name(), 37))
	fmt.Fprintf(w, "║  Total VRAM:            %-37s ║\n", fmt.Sprintf("%.0f GB", res.Best.Offering.TotalMemoryGB()))
	fmt.Fprintf(w, "║  Hourly price:          $%-36.2f ║\n", res.Best.Offering.HourlyPriceUSD)
	fmt.Fprintf(w, "║  Monthly (%2.0fh/day):     $%-36s ║\n", policy.HoursPerDay, res.Projection.MonthlyUSD.StringFixed(2))
	fmt.Fprintf(w, "║  Yearly:                $%-36s ║\n", res.Projection.YearlyUSD.StringFixed(2))
	if res.Savings != nil && res.Baseline != nil {
		fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
		fmt.Fprintf(w, "║  Baseline:              %-37s ║\n", truncate(res.Baseline.Name(), 37))
		fmt.Fprintf(w, "║  Monthly savings:       $%-36s ║\n", res.Savings.MonthlyUSD.StringFixed(2))
		fmt.Fprintf(w, "║  Yearly savings:        $%-36s ║\n", res.Savings.YearlyUSD.StringFixed(2))
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")

	if len(res.Alternatives) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Alternatives (cheapest first):")
		for i, alt := range res.Alternatives {
			fmt.Fprintf(w, "  %2d. %-32s %6.0f GB  $%.2f/hr\n",
				i+1, truncate(alt.Offering.Name(), 32), alt.Offering.TotalMemoryGB(), alt.Offering.HourlyPriceUSD)
		}
	}
	return nil
}

// RenderMarkdown writes a PR-comment friendly summary.
func RenderMarkdown(w io.Writer, res *recommend.Result, policy api.UsagePolicy) error {
	fmt.Fprintln(w, "## GPU Recommendation")
	fmt.Fprintln(w)
	if sig := res.Requirement.MatchedSignature; sig != nil {
		fmt.Fprintf(w, "Detected **%s** (%s), requiring **%.1f GB** VRAM.\n\n",
			sig.ID, sig.Category, res.Requirement.EffectiveGB)
	} else {
		fmt.Fprintf(w, "No known workload detected; assuming **%.1f GB** VRAM.\n\n", res.Requirement.EffectiveGB)
	}
	fmt.Fprintln(w, "| Offering | VRAM | $/hr | Monthly |")
	fmt.Fprintln(w, "|---|---|---|---|")
	fmt.Fprintf(w, "| **%s** | %.0f GB | $%.2f | $%s |\n",
		res.Best.Offering.Name(), res.Best.Offering.TotalMemoryGB(),
		res.Best.Offering.HourlyPriceUSD, res.Projection.MonthlyUSD.StringFixed(2))
	for _, alt := range res.Alternatives {
		fmt.Fprintf(w, "| %s | %.0f GB | $%.2f | |\n",
			alt.Offering.Name(), alt.Offering.TotalMemoryGB(), alt.Offering.HourlyPriceUSD)
	}
	if res.Savings != nil && res.Baseline != nil {
		fmt.Fprintf(w, "\nSwitching from %s saves **$%s/month** ($%s/year).\n",
			res.Baseline.Name(), res.Savings.MonthlyUSD.StringFixed(2), res.Savings.YearlyUSD.StringFixed(2))
	}
	return nil
}

// RenderNoFit explains a no-fit outcome in the caller's terms.
func RenderNoFit(w io.Writer, err *recommend.NoFitError) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "✗ No offering fits: the workload needs %.1f GB of total VRAM after buffering.\n", err.RequiredGB)
	fmt.Fprintln(w, "  Consider the advanced catalog (--advanced) or multi-GPU configurations.")
}

const (
	deployBadgeURL    = "https://brev.nvidia.com/assets/deploy-badge.svg"
	deployURLTemplate = "https://brev.nvidia.com/launchables/%s/deploy"

	// PlaceholderLaunchableID marks where the real id goes once the
	// Launchable exists in the Brev console.
	PlaceholderLaunchableID = "env-REPLACE_ME"
)

// RenderNextSteps walks the user from a generated config to a deployed
// Launchable.
func RenderNextSteps(w io.Writer, launchablePath string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "━━━ Next Steps ━━━")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "1. Commit and push %s to your repository\n", launchablePath)
	fmt.Fprintln(w, "2. Create a Launchable in Brev:")
	fmt.Fprintln(w, "   - Go to https://brev.nvidia.com")
	fmt.Fprintln(w, "   - Navigate to Launchables > Create Launchable")
	fmt.Fprintln(w, "   - Select Git Repository")
	fmt.Fprintln(w, "   - Click Show configuration")
	fmt.Fprintf(w, "   - Paste the contents of %s\n", launchablePath)
	fmt.Fprintln(w, "3. Deploy your Launchable to a GPU instance")
	fmt.Fprintln(w, "4. Verify your notebook opens or app responds")
}

// RenderBadgeSnippet prints README markup for a one-click deploy badge,
// in both markdown and HTML forms. An empty id gets the placeholder.
func RenderBadgeSnippet(w io.Writer, launchableID string) {
	if launchableID == "" {
		launchableID = PlaceholderLaunchableID
	}
	deployURL := fmt.Sprintf(deployURLTemplate, launchableID)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "━━━ Badge Snippet ━━━")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add this to your README to let users deploy with one click:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintf(w, "[![Deploy on Brev](%s)](%s)\n", deployBadgeURL, deployURL)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML:")
	fmt.Fprintf(w, "<a href=%q>\n  <img src=%q alt=\"Deploy on Brev\" />\n</a>\n", deployURL, deployBadgeURL)
}

// Check is one doctor finding.
type Check struct {
	Name    string
	Passed  bool
	Message string
}

// RenderChecks prints doctor findings and reports overall health.
func RenderChecks(w io.Writer, checks []Check) bool {
	allPassed := true
	fmt.Fprintln(w)
	for _, c := range checks {
		mark := "✓"
		if !c.Passed {
			mark = "✗"
			allPassed = false
		}
		fmt.Fprintf(w, "%s %-18s %s\n", mark, c.Name, c.Message)
	}
	fmt.Fprintln(w)
	if allPassed {
		fmt.Fprintln(w, "All checks passed.")
	} else {
		fmt.Fprintln(w, "Some checks failed; fix them before deploying.")
	}
	return allPassed
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
