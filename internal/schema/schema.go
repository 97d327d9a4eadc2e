// Package schema defines the fixed output schema for normalized grant records.
//
// The schema is process-wide read-only configuration: it is initialized once
// and never mutated, so it is safe to read from concurrent goroutines.
package schema

// columns lists every output field, in the column order expected by the
// downstream persistence collaborator.
var columns = []string{
	"Nome del bando",
	"Categoria del bando_MR",
	"Descrizione breve (Plain text)",
	"Descrizione del bando",
	"Descrizione fondo perduto",
	"Descrizione tipo di agevolazione e emanazione",
	"Dotazione",
	"Percentuale fondo perduto number",
	"Richiesta massima (number)",
	"Richiesta minima (number)",
	"Regime di aiuto",
	"Spese ammissibili",
	"Spese ammissibili_MR",
	"A chi si rivolge",
	"A chi si rivolge_MR",
	"Codice ateco",
	"Excluded Codice ateco",
	"Settore_MR",
	"Sezione",
	"Cumulabilità",
	"Scadenza",
	"Scadenza interna",
	"Data di apertura",
	"Data creazione",
	"Stato del bando",
	"Tipo",
	"Iter presentazione della domanda",
	"Documentazione necessaria",
	"Esempi progetti ammissibili",
	"Promotore del bando",
	"Emanazione",
	"Provincia",
	"Località_MR",
	"Link al sito del bando",
	"Link Bando",
	"Allegato Compilativo - X",
	"Allegato informativo - X",
}

var columnSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		set[col] = struct{}{}
	}
	return set
}()

// Columns returns the output columns in order. The returned slice is a copy
// and may be modified by the caller.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Len returns the number of output columns.
func Len() int {
	return len(columns)
}

// IsField reports whether name is one of the schema's output fields.
func IsField(name string) bool {
	_, ok := columnSet[name]
	return ok
}
