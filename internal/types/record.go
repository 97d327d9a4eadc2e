// Package types provides type definitions for grant records shared across the normalization pipeline.
package types

// RawRecord maps schema field names to the raw text values scraped from a
// grant page. Keys may be absent; an absent key is treated as an empty value.
type RawRecord map[string]string

// NormalizedRecord maps every schema field name to its normalized string
// value. Every schema field is present; fields with no value hold the empty
// string. Multi-valued categorical fields hold the matched vocabulary terms
// joined with ", ".
type NormalizedRecord map[string]string
