// Package validation checks normalized grant records against required-field
// and format rules before they are handed to persistence.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/matteo/grant-normalizer/internal/types"
)

// requiredFields must be non-empty in every accepted record.
var requiredFields = []string{
	"Nome del bando",
	"Descrizione breve (Plain text)",
	"Dotazione",
	"Link Bando",
}

// urlFields must start with http:// or https:// when present. An empty URL
// field is not a format violation; emptiness is covered by the required
// rules where it matters.
var urlFields = []string{
	"Link al sito del bando",
	"Link Bando",
}

const urlRule = "startswith=http://|startswith=https://"

var validate = validator.New()

// Validate checks a normalized record and returns every violation found as
// an operator-facing Italian message. It is not fail-fast and never mutates
// the record; an empty result means the record is accepted.
func Validate(record types.NormalizedRecord) []string {
	var violations []string

	for _, field := range requiredFields {
		if err := validate.Var(record[field], "required"); err != nil {
			violations = append(violations, fmt.Sprintf("Campo richiesto mancante: %s", field))
		}
	}

	for _, field := range urlFields {
		value := record[field]
		if value == "" {
			continue
		}
		if err := validate.Var(value, urlRule); err != nil {
			violations = append(violations, fmt.Sprintf("Formato URL non valido per: %s", field))
		}
	}

	return violations
}
