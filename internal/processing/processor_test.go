package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteo/grant-normalizer/internal/schema"
	"github.com/matteo/grant-normalizer/internal/types"
)

func TestProcessAlwaysReturnsFullSchema(t *testing.T) {
	tests := []struct {
		name string
		raw  types.RawRecord
	}{
		{"Empty input", types.RawRecord{}},
		{"Nil input", nil},
		{"Partial input", types.RawRecord{"Nome del bando": "Bando X"}},
		{"Unknown keys ignored", types.RawRecord{"Campo inventato": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Process(tt.raw)

			require.Len(t, record, schema.Len())
			for _, col := range schema.Columns() {
				_, ok := record[col]
				assert.True(t, ok, "missing schema field %q", col)
			}
			_, ok := record["Campo inventato"]
			assert.False(t, ok, "unknown input keys must not leak into the output")
		})
	}
}

func TestProcessCopiesKnownKeysVerbatim(t *testing.T) {
	record := Process(types.RawRecord{
		"Stato del bando": "Attivo",
		"Regime di aiuto": "De minimis",
	})

	assert.Equal(t, "Attivo", record["Stato del bando"])
	assert.Equal(t, "De minimis", record["Regime di aiuto"])
}

func TestProcessCleansTextFields(t *testing.T) {
	record := Process(types.RawRecord{
		"Nome del bando":                 "  Bando \n\n innovazione \t2024 ",
		"Descrizione breve (Plain text)": "linea  uno\nlinea due",
	})

	assert.Equal(t, "Bando innovazione 2024", record["Nome del bando"])
	assert.Equal(t, "linea uno linea due", record["Descrizione breve (Plain text)"])
}

func TestProcessNumericFields(t *testing.T) {
	record := Process(types.RawRecord{
		"Dotazione":                        "€ 1.500.000,50",
		"Percentuale fondo perduto number": "fino al 50",
		"Richiesta minima (number)":        "non indicata",
	})

	assert.Equal(t, "1500000.5", record["Dotazione"])
	assert.Equal(t, "50", record["Percentuale fondo perduto number"])
	// Extraction failure keeps the copied raw text instead of blanking.
	assert.Equal(t, "non indicata", record["Richiesta minima (number)"])
	assert.Equal(t, "", record["Richiesta massima (number)"])
}

func TestProcessDateFields(t *testing.T) {
	record := Process(types.RawRecord{
		"Scadenza interna": "31/12/2024",
		"Data di apertura": "1 marzo 2024",
		"Data creazione":   "data da definire",
		"Scadenza":         "31/12/2024",
	})

	assert.Equal(t, "2024-12-31", record["Scadenza interna"])
	assert.Equal(t, "2024-03-01", record["Data di apertura"])
	assert.Equal(t, "data da definire", record["Data creazione"])
	// "Scadenza" is a display field, copied through untouched.
	assert.Equal(t, "31/12/2024", record["Scadenza"])
}

func TestProcessCategoricalFields(t *testing.T) {
	record := Process(types.RawRecord{
		"A chi si rivolge":      "startup e PMI",
		"Spese ammissibili":     "spese di Formazione e Marketing",
		"Descrizione del bando": "bando per il turismo e la cultura",
		"Provincia":             "Milano, Lombardia",
	})

	assert.Equal(t, "startup, PMI, micro impresa", record["A chi si rivolge_MR"])
	assert.Equal(t, "Formazione, Marketing", record["Spese ammissibili_MR"])
	assert.Equal(t, "Cultura, Turismo", record["Settore_MR"])
	assert.Equal(t, "Lombardia", record["Località_MR"])

	// The source fields themselves are cleaned, not replaced.
	assert.Equal(t, "startup e PMI", record["A chi si rivolge"])
}

func TestProcessSections(t *testing.T) {
	tests := []struct {
		name     string
		ateco    string
		expected string
	}{
		{"Bare uppercase letters", "Sezione C - 25.61", "C, S"},
		{"Phrase match lowercase", "codice ateco: sezione b", "B"},
		{"No ateco text", "", ""},
		{"Lowercase letters alone do not match", "codice f", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Process(types.RawRecord{"Codice ateco": tt.ateco})
			assert.Equal(t, tt.expected, record["Sezione"])
		})
	}
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	raw := types.RawRecord{"Nome del bando": "  spazi  "}
	_ = Process(raw)
	assert.Equal(t, "  spazi  ", raw["Nome del bando"])
}
