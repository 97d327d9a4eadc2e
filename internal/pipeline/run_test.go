package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteo/grant-normalizer/internal/schema"
	"github.com/matteo/grant-normalizer/internal/types"
)

func validRaw(name string) types.RawRecord {
	return types.RawRecord{
		"Nome del bando":                 name,
		"Descrizione breve (Plain text)": "descrizione",
		"Dotazione":                      "€ 100.000",
		"Link Bando":                     "https://esempio.it/" + name,
	}
}

func TestRunPreservesInputOrder(t *testing.T) {
	records := []types.RawRecord{
		validRaw("primo"),
		validRaw("secondo"),
		validRaw("terzo"),
	}

	result, err := Run(context.Background(), records, Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, result.Results, 3)

	assert.Equal(t, "primo", result.Results[0].Record["Nome del bando"])
	assert.Equal(t, "secondo", result.Results[1].Record["Nome del bando"])
	assert.Equal(t, "terzo", result.Results[2].Record["Nome del bando"])
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 0, result.Invalid)
}

func TestRunCountsInvalidRecords(t *testing.T) {
	records := []types.RawRecord{
		validRaw("valido"),
		{"Nome del bando": "incompleto"},
		{},
	}

	result, err := Run(context.Background(), records, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Invalid)
	assert.True(t, result.Results[0].Valid())
	assert.False(t, result.Results[1].Valid())
	assert.False(t, result.Results[2].Valid())
}

func TestRunEmitsProgress(t *testing.T) {
	records := []types.RawRecord{validRaw("a"), validRaw("b")}

	var mu sync.Mutex
	var events []ProgressEvent
	opts := Options{
		Workers: 2,
		OnProgress: func(event ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
		},
	}

	result, err := Run(context.Background(), records, opts)
	require.NoError(t, err)

	assert.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, "process", event.Stage)
		assert.Equal(t, result.RunID, event.RunID)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	result, err := Run(context.Background(), nil, Options{})
	require.NoError(t, err)

	assert.Empty(t, result.Results)
	assert.Equal(t, 0, result.Invalid)
	assert.NotEmpty(t, result.RunID)
}

func TestRunRecordsCoverFullSchema(t *testing.T) {
	result, err := Run(context.Background(), []types.RawRecord{{}}, Options{})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	assert.Len(t, result.Results[0].Record, schema.Len())
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []types.RawRecord{validRaw("a")}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
