package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/export"
	"github.com/docforge/docforge/internal/render"
)

var (
	renderDocType string
	renderTheme   string
	renderOutput  string
)

var renderCmd = &cobra.Command{
	Use:   "render <document.json>",
	Short: "Render a document model to HTML or PDF",
	Long: `Render a JSON document model to a themed HTML page, or to PDF when the
output path ends in .pdf. PDF output requires a local Chrome or Chromium.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderDocType, "type", "modern", "Document type (resume, classic, modern, minimal, cover_letter, invoice)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", render.DefaultTheme,
		"Color theme ("+strings.Join(render.ThemeNames(), ", ")+")")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output path (defaults to stdout for HTML)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	if strings.HasSuffix(renderOutput, ".pdf") {
		exporter := export.New(export.NewChromeEngine())
		pdf, _, err := exporter.Export(cmd.Context(), renderDocType, json.RawMessage(data), renderTheme)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		if err := os.WriteFile(renderOutput, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", renderOutput, len(pdf))
		return nil
	}

	html, err := render.HTML(renderDocType, json.RawMessage(data), renderTheme)
	if err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	if renderOutput == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOutput, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	fmt.Printf("Wrote %s\n", renderOutput)
	return nil
}
