package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matteo/grant-normalizer/internal/types"
	"github.com/matteo/grant-normalizer/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a file of already-normalized records",
	Long:  "Read a JSON array of normalized records and print every required-field and URL-format violation found.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Path to normalized records JSON file (required)")

	validateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var records []types.NormalizedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	invalid := 0
	for i, record := range records {
		violations := validation.Validate(record)
		if len(violations) == 0 {
			continue
		}
		invalid++
		fmt.Fprintf(os.Stdout, "Record %d:\n", i)
		for _, v := range violations {
			fmt.Fprintf(os.Stdout, "  - %s\n", v)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", invalid, len(records))
	}

	fmt.Fprintf(os.Stdout, "All %d records valid\n", len(records))
	return nil
}
