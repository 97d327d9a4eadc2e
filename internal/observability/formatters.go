// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/matteo/grant-normalizer/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxViolationsToShow is the number of violations displayed per record
	maxViolationsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of one processed record.
func (p *Printer) PrintRecord(index int, result pipeline.RecordResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Nome:      %s\n", result.Record["Nome del bando"]))
	sb.WriteString(fmt.Sprintf("Dotazione: %s\n", result.Record["Dotazione"]))
	sb.WriteString(fmt.Sprintf("Scadenza:  %s\n", result.Record["Scadenza interna"]))

	if result.Valid() {
		sb.WriteString("Esito:     valido")
	} else {
		sb.WriteString(fmt.Sprintf("Esito:     %d violazioni\n", len(result.Violations)))
		for i, v := range result.Violations {
			if i >= maxViolationsToShow {
				sb.WriteString(fmt.Sprintf("  ... e altre %d\n", len(result.Violations)-maxViolationsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", v))
		}
	}

	p.printBox(fmt.Sprintf("Record %d", index), strings.TrimRight(sb.String(), "\n"))
}

// PrintBatchSummary outputs the outcome of a whole batch run.
func (p *Printer) PrintBatchSummary(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run ID:   %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Records:  %d\n", len(result.Results)))
	sb.WriteString(fmt.Sprintf("Validi:   %d\n", len(result.Results)-result.Invalid))
	sb.WriteString(fmt.Sprintf("Invalidi: %d", result.Invalid))

	p.printBox("Batch", sb.String())
}
