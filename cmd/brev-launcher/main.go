// brev-launcher CLI - GPU recommendation and Launchable config generation
//
// Usage:
//   brev-launcher recommend [--path .] [--advanced] [--format table]
//   brev-launcher init [--path .] [--type notebook] [--yes]
//   brev-launcher doctor [--path .]
//   brev-launcher serve [--port 8080]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	httpapi "github.com/demirreren/brev-launcher/api"
	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/internal/device"
	"github.com/demirreren/brev-launcher/internal/gitinfo"
	"github.com/demirreren/brev-launcher/internal/launchable"
	"github.com/demirreren/brev-launcher/internal/output"
	"github.com/demirreren/brev-launcher/internal/recommend"
	"github.com/demirreren/brev-launcher/internal/signals"
	"github.com/demirreren/brev-launcher/pkg/api"
)

// Exit codes for CI integration.
const (
	ExitSuccess           = 0
	ExitValidationFailure = 2
	ExitGenerationFailure = 3
	ExitNoFit             = 4
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "brev-launcher",
		Usage:   "Recommend GPU instances and generate Brev Launchable configs from your project",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"BREV_LAUNCHER_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid log level: %s", c.String("log-level")), ExitValidationFailure)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},

		Commands: []*cli.Command{
			recommendCommand(),
			initCommand(),
			doctorCommand(),
			serveCommand(),
		},
	}

	// cli.Exit errors never reach here: App.Run handles them and exits
	// with their code.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func pathFlag() *cli.PathFlag {
	return &cli.PathFlag{
		Name:    "path",
		Aliases: []string{"p"},
		Value:   ".",
		Usage:   "Project directory",
	}
}

// =============================================================================
// RECOMMEND COMMAND
// =============================================================================

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Estimate VRAM needs and recommend the cheapest fitting GPU offering",
		Flags: []cli.Flag{
			pathFlag(),
			&cli.Float64Flag{
				Name:    "hours-per-day",
				Value:   24,
				Usage:   "Assumed usage hours per day for cost projection",
				EnvVars: []string{"BREV_LAUNCHER_HOURS_PER_DAY"},
			},
			&cli.Float64Flag{
				Name:    "safety-buffer",
				Value:   0.20,
				Usage:   "Fractional memory buffer applied before fit filtering",
				EnvVars: []string{"BREV_LAUNCHER_SAFETY_BUFFER"},
			},
			&cli.IntFlag{
				Name:  "alternatives",
				Value: 10,
				Usage: "Maximum number of alternative offerings to show",
			},
			&cli.BoolFlag{
				Name:    "advanced",
				Usage:   "Search the full multi-provider catalog instead of the curated one",
				EnvVars: []string{"BREV_LAUNCHER_ADVANCED"},
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Load offerings from a YAML file instead of the built-in catalogs",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, markdown)",
			},
			&cli.StringFlag{
				Name:  "baseline",
				Usage: "GPU model to compare against (default: auto-detect via nvidia-smi)",
			},
		},
		Action: runRecommend,
	}
}

func runRecommend(c *cli.Context) error {
	policy := api.UsagePolicy{
		HoursPerDay:          c.Float64("hours-per-day"),
		SafetyBufferFraction: c.Float64("safety-buffer"),
		AlternativesCap:      c.Int("alternatives"),
		AdvancedCatalog:      c.Bool("advanced"),
	}

	offerings, err := selectCatalog(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitValidationFailure)
	}
	if n := offerings.Dropped(); n > 0 {
		log.Warn().Int("dropped", n).Msg("malformed catalog records were skipped")
	}

	scan, err := signals.ScanProject(c.Path("path"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("scanning project: %v", err), ExitValidationFailure)
	}
	log.Info().
		Int("artifacts", len(scan.Signals.Artifacts)).
		Str("type", scan.ProjectType).
		Msg("project scanned")

	baseline := resolveBaseline(c.String("baseline"), offerings)

	engine := recommend.NewEngine(catalog.NewPatternCatalog(), offerings)
	result, err := engine.Recommend(scan.Signals, baseline, policy)
	if err != nil {
		var noFit *recommend.NoFitError
		if errors.As(err, &noFit) {
			output.RenderNoFit(os.Stdout, noFit)
			return cli.Exit("", ExitNoFit)
		}
		if errors.Is(err, recommend.ErrInvalidPolicy) {
			return cli.Exit(err.Error(), ExitValidationFailure)
		}
		return err
	}

	switch c.String("format") {
	case "json":
		return output.RenderJSON(os.Stdout, result, policy)
	case "markdown":
		return output.RenderMarkdown(os.Stdout, result, policy)
	default:
		return output.RenderTable(os.Stdout, result, policy)
	}
}

func selectCatalog(c *cli.Context) (*catalog.OfferingCatalog, error) {
	if path := c.String("catalog"); path != "" {
		return catalog.LoadOfferingCatalog(path)
	}
	if c.Bool("advanced") {
		return catalog.NewAdvancedCatalog(), nil
	}
	return catalog.NewCuratedCatalog(), nil
}

// resolveBaseline maps either an explicit GPU model or the detected
// local device onto a catalog offering. No baseline means savings are
// simply omitted.
func resolveBaseline(model string, offerings *catalog.OfferingCatalog) *catalog.Offering {
	if model != "" {
		matches := offerings.FilterByAccelerator(model)
		if len(matches) > 0 {
			return &matches[0]
		}
		log.Warn().Str("model", model).Msg("baseline GPU not in catalog, skipping comparison")
		return nil
	}
	info := device.Detect()
	if !info.Available {
		return nil
	}
	baseline := device.BaselineOffering(info, offerings)
	if baseline != nil {
		log.Info().Str("gpu", info.GPUName).Str("baseline", baseline.Name()).Msg("using detected GPU as baseline")
	}
	return baseline
}

// =============================================================================
// INIT COMMAND
// =============================================================================

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Generate launchable.yaml with a recommended GPU for this project",
		Flags: []cli.Flag{
			pathFlag(),
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Project type: notebook or webapp (default: inferred)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port for webapp (default: 7860) or Jupyter (default: 8888)",
			},
			&cli.BoolFlag{
				Name:    "advanced",
				Usage:   "Recommend from the full multi-provider catalog",
				EnvVars: []string{"BREV_LAUNCHER_ADVANCED"},
			},
		},
		Action: runInit,
	}
}

func runInit(c *cli.Context) error {
	root := c.Path("path")

	scan, err := signals.ScanProject(root)
	if err != nil {
		return cli.Exit(fmt.Sprintf("scanning project: %v", err), ExitValidationFailure)
	}

	git, err := gitinfo.Collect(root)
	if err != nil {
		// Still usable: the config gets placeholder git info.
		log.Warn().Err(err).Msg("git metadata unavailable, using placeholders")
		git = gitinfo.Info{
			NormalizedURL: "https://github.com/YOUR_USERNAME/YOUR_REPO",
			DefaultBranch: "main",
			RepoName:      filepath.Base(mustAbs(root)),
		}
	}

	projectType := scan.ProjectType
	if t := c.String("type"); t != "" {
		projectType = t
	}
	port := c.Int("port")
	if port == 0 {
		if projectType == signals.ProjectTypeNotebook {
			port = launchable.DefaultNotebookPort
		} else {
			port = launchable.DefaultWebappPort
		}
	}

	cfg := launchable.New(
		git.RepoName,
		fmt.Sprintf("%s - deployed via Brev Launchables", git.RepoName),
		launchable.SourceConfig{Type: "git", URL: git.NormalizedURL, Ref: git.DefaultBranch, Path: "/"},
	).WithInstall(scan.InstallCommand)

	// Bake the recommendation into the compute section when one exists.
	offerings := catalog.NewCuratedCatalog()
	if c.Bool("advanced") {
		offerings = catalog.NewAdvancedCatalog()
	}
	engine := recommend.NewEngine(catalog.NewPatternCatalog(), offerings)
	result, err := engine.Recommend(scan.Signals, nil, api.DefaultUsagePolicy())
	if err == nil {
		note := fmt.Sprintf("Cheapest fit for %.1f GB VRAM requirement", result.Requirement.EffectiveGB)
		cfg.WithGPU(result.Best.Offering.Name(), note)
	} else {
		log.Warn().Err(err).Msg("no GPU recommendation, keeping default")
	}

	if projectType == signals.ProjectTypeNotebook {
		cfg.WithNotebook(launchable.DefaultNotebookCmd, port)
	} else {
		cfg.WithWebapp(launchable.DefaultWebappCmd, port)
	}

	path, err := cfg.Write(root)
	if err != nil {
		return cli.Exit(fmt.Sprintf("writing config: %v", err), ExitGenerationFailure)
	}
	fmt.Printf("✓ Created %s\n", path)
	output.RenderNextSteps(os.Stdout, launchable.FileName)
	output.RenderBadgeSnippet(os.Stdout, "")
	return nil
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// =============================================================================
// DOCTOR COMMAND
// =============================================================================

func doctorCommand() *cli.Command {
	return &cli.Command{
		Name:   "doctor",
		Usage:  "Check project health and deployment readiness",
		Flags:  []cli.Flag{pathFlag()},
		Action: runDoctor,
	}
}

func runDoctor(c *cli.Context) error {
	root := c.Path("path")
	var checks []output.Check

	if gitinfo.IsRepo(root) {
		checks = append(checks, output.Check{Name: "Git repository", Passed: true, Message: "Project is a git repo"})
		if origin := gitinfo.OriginURL(root); origin != "" {
			checks = append(checks, output.Check{Name: "Origin remote", Passed: true, Message: origin})
		} else {
			checks = append(checks, output.Check{Name: "Origin remote", Passed: false, Message: "No origin remote configured"})
		}
	} else {
		checks = append(checks, output.Check{Name: "Git repository", Passed: false, Message: "Not a git repository"})
	}

	scan, err := signals.ScanProject(root)
	if err != nil {
		return cli.Exit(fmt.Sprintf("scanning project: %v", err), ExitValidationFailure)
	}
	if scan.DependencyFile != "" {
		checks = append(checks, output.Check{Name: "Dependencies", Passed: true, Message: "Found " + scan.DependencyFile})
	} else {
		checks = append(checks, output.Check{Name: "Dependencies", Passed: false, Message: "No requirements.txt or pyproject.toml"})
	}
	if scan.EntryFile != "" {
		checks = append(checks, output.Check{Name: "Entry file", Passed: true, Message: "Found " + scan.EntryFile})
	} else {
		checks = append(checks, output.Check{Name: "Entry file", Passed: false, Message: "No entry file found"})
	}
	if _, err := os.Stat(filepath.Join(root, launchable.FileName)); err == nil {
		checks = append(checks, output.Check{Name: "Launchable config", Passed: true, Message: launchable.FileName + " exists"})
	} else {
		checks = append(checks, output.Check{Name: "Launchable config", Passed: false, Message: "Run 'brev-launcher init' to create"})
	}
	if scan.HasEnvExample {
		checks = append(checks, output.Check{Name: "Environment", Passed: true, Message: ".env.example found"})
	} else {
		checks = append(checks, output.Check{Name: "Environment", Passed: true, Message: "No .env.example (optional)"})
	}
	if brev := device.DetectBrevCLI(); brev.Available {
		instance := brev.InstanceName
		if instance == "" {
			instance = "unknown"
		}
		checks = append(checks, output.Check{Name: "Brev CLI", Passed: true, Message: "Available (instance: " + instance + ")"})
	} else {
		checks = append(checks, output.Check{Name: "Brev CLI", Passed: true, Message: "Not installed (optional)"})
	}

	if !output.RenderChecks(os.Stdout, checks) {
		return cli.Exit("", ExitValidationFailure)
	}
	return nil
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Expose the recommendation engine over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "Listen port",
				EnvVars: []string{"BREV_LAUNCHER_PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg := httpapi.DefaultConfig()
			cfg.Port = c.Int("port")
			server := httpapi.NewServer(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Start(ctx)
		},
	}
}
