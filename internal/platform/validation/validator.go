// Package validation checks decoded request payloads against their
// `validate` struct tags.
package validation

// Validator validates a struct and returns one message per failing field,
// keyed by the field's json name. A valid struct yields nil.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
