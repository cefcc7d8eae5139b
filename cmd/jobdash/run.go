package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fr4nk3nst1ner/jobdash/internal/config"
	"github.com/fr4nk3nst1ner/jobdash/internal/generator"
	"github.com/fr4nk3nst1ner/jobdash/internal/models"
	"github.com/fr4nk3nst1ner/jobdash/internal/render"
	"github.com/fr4nk3nst1ner/jobdash/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	configPath string
	document   string
	count      int
	preview    int
	seed       int64
	debug      bool
	silence    bool
}

// loadConfig merges the config file, environment and explicitly set flags
func loadConfig(cmd *cobra.Command, opts *renderOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Document = opts.document
	}
	if flags.Changed("count") {
		cfg.Count = opts.count
	}
	if flags.Changed("preview") {
		cfg.PreviewLimit = opts.preview
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(debug bool) *pterm.Logger {
	if !debug {
		return nil
	}
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug)
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(opts.debug)

	ui.PrintBanner(opts.silence)
	pterm.Info.Println("Starting job data renderer...")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger != nil {
		logger.Debug("loaded config", logger.Args(
			"document", cfg.Document,
			"count", cfg.Count,
			"preview_limit", cfg.PreviewLimit,
			"onsite_bias", cfg.OnsiteBias,
			"seed", seed,
		))
	}

	bar := ui.NewProgressBar(cfg.Count, os.Stderr, opts.silence)
	jobs := generator.Generate(generator.Options{
		Count:      cfg.Count,
		OnsiteBias: cfg.OnsiteBias,
		Rand:       rand.New(rand.NewSource(seed)),
		OnRecord: func(models.JobRecord) {
			if bar != nil {
				bar.Increment()
			}
		},
	})
	if bar != nil {
		bar.Finish()
	}

	if err := models.ValidateBatch(jobs); err != nil {
		return fmt.Errorf("generated invalid batch: %w", err)
	}

	renderer := render.NewRenderer(cfg.Document)
	renderer.PreviewLimit = cfg.PreviewLimit
	renderer.Logger = logger

	summary, err := renderer.Render(jobs)
	if err != nil {
		return err
	}

	ui.PrintSummary(summary, cfg.Document)
	if opts.debug {
		ui.PrintPreview(jobs, cfg.PreviewLimit, time.Now())
	}
	pterm.Success.Println("Data rendering completed successfully!")
	pterm.Info.Printfln("Check %s for the updated dashboard", cfg.Document)
	return nil
}
