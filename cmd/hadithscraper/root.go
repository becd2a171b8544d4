package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/hadithscraper/internal/config"
)

// NewRootCmd creates the root command for hadithscraper.
// Running it with collection identifiers scrapes those collections.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hadithscraper [collection...]",
		Short: "Scrape hadith collections into JSON documents",
		Long: `hadithscraper downloads hadith collections from sunnah.com and writes one
JSON document per collection to the output directory.

Without arguments every known collection is scraped. Pass collection
identifiers (see "hadithscraper collections") to scrape only those.

Examples:
  # Scrape every collection into hadith/data_new
  hadithscraper

  # Scrape a single collection into another directory
  hadithscraper -o out nawawi40

  # Scrape faster against a local mirror
  hadithscraper --base-url http://localhost:8080 --delay 0 bukhari`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScrapeCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Scrape flags
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory the collection JSON files are written to")
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Pause before each book page request")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().String("base-url", config.DefaultBaseURL,
		"Base URL of the hadith site")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hadithscraper in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewCollectionsCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
