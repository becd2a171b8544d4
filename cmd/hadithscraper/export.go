package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/hadithscraper/internal/model"
	"github.com/nao1215/hadithscraper/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <collection.json>",
		Short: "Render a scraped collection as Markdown",
		Long: `Export reads a collection document written by hadithscraper and renders it
as Markdown: a summary table, then one section per book and hadith.

Examples:
  # Print Markdown to stdout
  hadithscraper export hadith/data_new/nawawi40.json

  # Write Markdown to a file
  hadithscraper export hadith/data_new/bukhari.json -o bukhari.md`,
		Args: cobra.ExactArgs(1),
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Write Markdown to the specified file instead of stdout")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close() //nolint:errcheck // read-only

	doc, err := report.ReadDocument(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if outputPath == "" {
		return writeMarkdown(cmd.OutOrStdout(), doc)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := report.WriteFile(outputPath, doc, report.NewMarkdownWriterFactory); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Markdown written to %s\n", outputPath)
	return nil
}

// writeMarkdown renders doc to w, making sure the output ends with a newline.
func writeMarkdown(w io.Writer, doc *model.Document) error {
	var sb strings.Builder
	if _, err := report.NewMarkdownWriter(&sb).Write(doc); err != nil {
		return err
	}
	out := sb.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
