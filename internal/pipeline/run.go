// Package pipeline provides batch orchestration for normalizing and
// validating many raw records.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matteo/grant-normalizer/internal/processing"
	"github.com/matteo/grant-normalizer/internal/types"
	"github.com/matteo/grant-normalizer/internal/validation"
)

// defaultWorkers bounds concurrent record processing when Options.Workers
// is unset.
const defaultWorkers = 4

// ProgressEvent represents a progress update during batch execution.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id"`
	Index   int    `json:"index"`
}

// ProgressCallback is called as records complete. Records are processed
// concurrently, so the callback must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the batch pipeline.
type Options struct {
	Workers    int
	OnProgress ProgressCallback
}

// RecordResult pairs one normalized record with its validation outcome.
type RecordResult struct {
	Record     types.NormalizedRecord `json:"record"`
	Violations []string               `json:"violations,omitempty"`
}

// Valid reports whether the record passed validation.
func (r RecordResult) Valid() bool {
	return len(r.Violations) == 0
}

// Result holds the outcome of one batch run. Results are in input order.
type Result struct {
	RunID   string         `json:"run_id"`
	Results []RecordResult `json:"results"`
	Invalid int            `json:"invalid"`
}

// Run normalizes and validates every record, fanning out across a bounded
// worker pool. Record processing itself is pure and non-blocking; the only
// error source is context cancellation.
func Run(ctx context.Context, records []types.RawRecord, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	result := &Result{
		RunID:   uuid.New().String(),
		Results: make([]RecordResult, len(records)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, raw := range records {
		i, raw := i, raw
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			normalized := processing.Process(raw)
			violations := validation.Validate(normalized)
			result.Results[i] = RecordResult{Record: normalized, Violations: violations}

			if opts.OnProgress != nil {
				opts.OnProgress(ProgressEvent{
					Stage:   "process",
					Message: fmt.Sprintf("record %d: %d violazioni", i, len(violations)),
					RunID:   result.RunID,
					Index:   i,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range result.Results {
		if !r.Valid() {
			result.Invalid++
		}
	}

	return result, nil
}
