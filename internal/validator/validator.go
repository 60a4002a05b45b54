package validator

import (
	"fmt"
	"sort"
	"strings"
)

// Validator collects field errors keyed by field name.
type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message recorded for a field.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err returns nil when valid, otherwise a *ValidationError holding every field error.
func (v *Validator) Err(message string) error {
	if v.Valid() {
		return nil
	}
	return NewValidationError(message, v.Errors)
}

// ValidationError is returned for input rejected before any store access.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}
