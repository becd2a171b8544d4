package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nao1215/hadithscraper/internal/config"
)

// NewCollectionsCmd creates the collections command.
func NewCollectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List the collections that can be scraped",
		Long: `List every known collection, including those added in the configuration
file under "collections".`,
		Args: cobra.NoArgs,
		RunE: runCollectionsCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hadithscraper in current or home directory)")

	return cmd
}

// runCollectionsCmd prints the registry as a table.
func runCollectionsCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Name", "Arabic"})
	for _, c := range cfg.Registry().All() {
		t.AppendRow(table.Row{c.ID, c.Name, c.Arabic})
	}
	t.Render()

	return nil
}
