package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/matteo/grant-normalizer/internal/config"
	"github.com/matteo/grant-normalizer/internal/export"
	"github.com/matteo/grant-normalizer/internal/observability"
	"github.com/matteo/grant-normalizer/internal/pipeline"
	"github.com/matteo/grant-normalizer/internal/schemas"
	"github.com/matteo/grant-normalizer/internal/types"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Normalize and validate a file of raw grant records",
	Long:  "Read a JSON array of raw key/value records, normalize each into the fixed output schema, validate the result, and write the normalized records plus a validation report.",
	RunE:  runProcess,
}

var (
	inputFile  string
	outDir     string
	configFile string
	workers    int
	strict     bool
	writeCSV   bool
	verbose    bool
)

func init() {
	processCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to raw records JSON file")
	processCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	processCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	processCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent record workers (default 4)")
	processCmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any record has violations")
	processCmd.Flags().BoolVar(&writeCSV, "csv", false, "Also write records.csv in schema column order")
	processCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print per-record summaries")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}

	if inputFile == "" {
		return fmt.Errorf("--input must be provided (flag or config file)")
	}
	if outDir == "" {
		return fmt.Errorf("--out must be provided (flag or config file)")
	}

	records, err := loadRawRecords(inputFile)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Workers: workers}
	var printer *observability.Printer
	if verbose {
		printer = observability.NewPrinter(os.Stdout)
		var mu sync.Mutex
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Stage, event.Message)
		}
	}

	result, err := pipeline.Run(cmd.Context(), records, opts)
	if err != nil {
		return fmt.Errorf("failed to process records: %w", err)
	}

	if printer != nil {
		for i, r := range result.Results {
			printer.PrintRecord(i, r)
		}
		printer.PrintBatchSummary(result)
	}

	if err := writeOutput(outDir, result); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Processed %d records (%d invalid)\n", len(result.Results), result.Invalid)
	fmt.Fprintf(os.Stdout, "Normalized records: %s\n", filepath.Join(outDir, "records.normalized.json"))
	fmt.Fprintf(os.Stdout, "Validation report: %s\n", filepath.Join(outDir, "validation_report.json"))

	if strict && result.Invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", result.Invalid, len(result.Results))
	}
	return nil
}

// applyConfig fills in values the user did not set explicitly on the
// command line; explicit flags win over the config file.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("input") && cfg.Input != "" {
		inputFile = cfg.Input
	}
	if !cmd.Flags().Changed("out") && cfg.Out != "" {
		outDir = cfg.Out
	}
	if !cmd.Flags().Changed("workers") && cfg.Workers != 0 {
		workers = cfg.Workers
	}
	if !cmd.Flags().Changed("strict") {
		strict = strict || cfg.Strict
	}
	if !cmd.Flags().Changed("csv") {
		writeCSV = writeCSV || cfg.CSV
	}
	if !cmd.Flags().Changed("verbose") {
		verbose = verbose || cfg.Verbose
	}
}

func loadRawRecords(path string) ([]types.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateRawRecords(data); err != nil {
		return nil, fmt.Errorf("input does not match the raw records schema: %w", err)
	}

	var records []types.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return records, nil
}

func writeOutput(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	normalized := make([]types.NormalizedRecord, len(result.Results))
	for i, r := range result.Results {
		normalized[i] = r.Record
	}

	recordsJSON, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal normalized records: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "records.normalized.json"), recordsJSON, 0644); err != nil {
		return fmt.Errorf("failed to write normalized records: %w", err)
	}

	reportJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "validation_report.json"), reportJSON, 0644); err != nil {
		return fmt.Errorf("failed to write validation report: %w", err)
	}

	if writeCSV {
		if err := export.WriteCSVFile(filepath.Join(dir, "records.csv"), normalized); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
	}
	return nil
}
