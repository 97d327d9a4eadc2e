// Package main provides the entry point for the grant record normalization CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grant_agent",
	Short: "Grant record normalization CLI",
	Long:  "grant_agent normalizes raw scraped grant records into the fixed output schema and validates them before persistence.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
