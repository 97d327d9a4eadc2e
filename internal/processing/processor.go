// Package processing orchestrates field normalization over the fixed output
// schema, turning one raw scraped record into one normalized record.
package processing

import (
	"strings"

	"github.com/matteo/grant-normalizer/internal/normalize"
	"github.com/matteo/grant-normalizer/internal/schema"
	"github.com/matteo/grant-normalizer/internal/types"
	"github.com/matteo/grant-normalizer/internal/vocab"
)

// listSeparator joins matched vocabulary terms in multi-valued fields.
const listSeparator = ", "

// textFields get whitespace normalization.
var textFields = []string{
	"Nome del bando",
	"Descrizione breve (Plain text)",
	"Descrizione del bando",
	"Descrizione fondo perduto",
	"Descrizione tipo di agevolazione e emanazione",
	"Spese ammissibili",
	"A chi si rivolge",
	"Codice ateco",
	"Cumulabilità",
	"Iter presentazione della domanda",
	"Documentazione necessaria",
	"Esempi progetti ammissibili",
}

// numericFields get amount extraction. On extraction failure the copied raw
// text is kept, not blanked.
var numericFields = []string{
	"Dotazione",
	"Percentuale fondo perduto number",
	"Richiesta massima (number)",
	"Richiesta minima (number)",
}

// dateFields get canonical date normalization.
var dateFields = []string{
	"Scadenza interna",
	"Data di apertura",
	"Data creazione",
}

// Process normalizes one raw record into the fixed output schema. Every
// schema field is present in the result; fields absent from the input stay
// empty. Normalization is best effort and never fails: values that resist
// extraction are left as copied raw text.
func Process(raw types.RawRecord) types.NormalizedRecord {
	record := make(types.NormalizedRecord, schema.Len())
	for _, col := range schema.Columns() {
		record[col] = ""
	}

	// Copy known keys verbatim; later steps may overwrite them.
	for key, value := range raw {
		if schema.IsField(key) {
			record[key] = value
		}
	}

	for _, field := range textFields {
		if value, ok := raw[field]; ok {
			record[field] = normalize.Clean(value)
		}
	}

	for _, field := range numericFields {
		if value, ok := raw[field]; ok {
			if number, extracted := normalize.ExtractNumber(value); extracted {
				record[field] = normalize.FormatNumber(number)
			}
		}
	}

	for _, field := range dateFields {
		if value, ok := raw[field]; ok {
			parsed, _ := normalize.ParseDate(value)
			record[field] = parsed
		}
	}

	if value, ok := raw["A chi si rivolge"]; ok {
		record["A chi si rivolge_MR"] = joinMatches(value, vocab.Audiences())
	}
	if value, ok := raw["Spese ammissibili"]; ok {
		record["Spese ammissibili_MR"] = joinMatches(value, vocab.SpendingCategories())
	}
	if value, ok := raw["Descrizione del bando"]; ok {
		record["Settore_MR"] = joinMatches(value, vocab.Sectors())
	}
	if value, ok := raw["Provincia"]; ok {
		record["Località_MR"] = joinMatches(value, vocab.Localities())
	}

	if value := raw["Codice ateco"]; value != "" {
		record["Sezione"] = strings.Join(matchSections(value), listSeparator)
	}

	return record
}

func joinMatches(text string, vocabulary []string) string {
	return strings.Join(vocab.Match(text, vocabulary), listSeparator)
}

// matchSections finds ATECO section letters in raw code text. A section
// matches on the bare letter (case-sensitive, codes are written uppercase)
// or on the phrase "sezione <letter>" in any case, so both "C 25.61" and
// "Sezione C" inputs resolve.
func matchSections(text string) []string {
	lower := strings.ToLower(text)
	var sections []string
	for _, code := range vocab.AtecoSections() {
		if strings.Contains(text, code) || strings.Contains(lower, "sezione "+strings.ToLower(code)) {
			sections = append(sections, code)
		}
	}
	return sections
}
