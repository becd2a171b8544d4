package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/hadithscraper/internal/config"
	"github.com/nao1215/hadithscraper/internal/crawler"
	applog "github.com/nao1215/hadithscraper/internal/log"
	"github.com/nao1215/hadithscraper/internal/pipeline"
)

// runScrapeCmd scrapes the collections named in args.
func runScrapeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("starting scrape",
		"targets", cfg.Targets,
		"base_url", cfg.BaseURL,
		"output_dir", cfg.OutputDir,
		"delay", cfg.Delay,
		"timeout", cfg.Timeout,
	)

	fetcher := crawler.NewFetcher(cfg.BaseURL,
		crawler.WithTimeout(cfg.Timeout),
		crawler.WithUserAgent(cfg.UserAgent),
	)
	scraper := crawler.NewScraper(fetcher, cfg.Selectors)

	runner := pipeline.NewRunner(scraper, cfg.Registry(), cfg.OutputDir, cfg.Delay,
		pipeline.WithRunnerLogger(logger),
		pipeline.WithRunnerProgress(cmd.OutOrStdout()),
		pipeline.WithWarnings(cmd.ErrOrStderr()),
	)

	return runner.Run(cmd.Context(), cfg.Targets)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig loads the config file and applies explicitly set flags on top.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("delay") {
		if cfg.Delay, err = flags.GetDuration("delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("base-url") {
		if cfg.BaseURL, err = flags.GetString("base-url"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args

	return cfg, nil
}
