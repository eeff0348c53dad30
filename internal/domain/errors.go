package domain

import "fmt"

// The error taxonomy separates caller-correctable input errors
// (MissingFieldError, TypeCoercionError, UnknownDomainError) from
// configuration defects (ScoringConfigurationError), which are
// programming errors surfaced at startup, never caused by request data.

// MissingFieldError reports a required schema field absent from the
// caller's record.
type MissingFieldError struct {
	Field string `json:"field"`
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// TypeCoercionError reports a value that cannot be coerced to its
// declared field type.
type TypeCoercionError struct {
	Field    string    `json:"field"`
	Expected FieldType `json:"expected"`
	Value    any       `json:"value"`
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("field %s must be of type %s, got %v", e.Field, e.Expected, e.Value)
}

// UnknownDomainError reports an assessment domain name the registry does
// not know.
type UnknownDomainError struct {
	Domain string `json:"domain"`
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("unknown assessment domain: %s", e.Domain)
}

// ScoringConfigurationError reports a domain whose scoring rules, factor
// weights or radar spec reference fields its schema does not declare.
// This is a setup defect: the registry refuses to construct and the
// process fails at startup rather than at request time.
type ScoringConfigurationError struct {
	Domain string `json:"domain"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ScoringConfigurationError) Error() string {
	return fmt.Sprintf("scoring configuration error in domain %s: field %s: %s", e.Domain, e.Field, e.Reason)
}

// AnalysisUnsupportedError reports an analyze call against a domain that
// has no factor-analysis hooks configured.
type AnalysisUnsupportedError struct {
	Domain string `json:"domain"`
}

func (e *AnalysisUnsupportedError) Error() string {
	return fmt.Sprintf("domain %s does not support detailed analysis", e.Domain)
}
