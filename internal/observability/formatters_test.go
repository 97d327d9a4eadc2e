package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matteo/grant-normalizer/internal/pipeline"
	"github.com/matteo/grant-normalizer/internal/types"
)

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(0, pipeline.RecordResult{
		Record: types.NormalizedRecord{
			"Nome del bando": "Bando test",
			"Dotazione":      "500000",
		},
		Violations: []string{"Campo richiesto mancante: Link Bando"},
	})

	out := buf.String()
	assert.Contains(t, out, "Record 0")
	assert.Contains(t, out, "Bando test")
	assert.Contains(t, out, "1 violazioni")
}

func TestPrintRecordValid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(2, pipeline.RecordResult{Record: types.NormalizedRecord{}})

	assert.Contains(t, buf.String(), "valido")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(&pipeline.Result{
		RunID:   "run-123",
		Results: make([]pipeline.RecordResult, 3),
		Invalid: 1,
	})

	out := buf.String()
	assert.Contains(t, out, "run-123")
	assert.Contains(t, out, "Records:  3")
	assert.Contains(t, out, "Invalidi: 1")
}

func TestPrintBatchSummaryNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(nil)
	assert.Empty(t, buf.String())
}
