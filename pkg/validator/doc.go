// Package validator holds the format rules used by masked fields. Every rule is
// a pure func(string) bool: malformed input yields false rather than an error,
// so callers can store the verdict directly as a field's validity record.
//
// Rules are grouped by family (identifier_rules.go for tax IDs, format_rules.go
// for phone/email, date_rules.go for date/time) and addressed by a format
// identifier through Registry. The identifiers double as mask names, see
// package mask.
package validator
