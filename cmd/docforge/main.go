// Package main provides the entry point for the DocForge HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "DocForge document generation API server",
	Long:  "DocForge generates AI-drafted resumes, cover letters, and invoices, renders them to themed PDFs via headless Chrome, and meters exports per subscription tier.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
