// Package validate provides input validation utilities for formdrop components.
//
// Implements endpoint URL, field mapping, and configuration validation using
// the go-playground/validator library. Prevents malformed submitter
// configuration from producing a batch of failures that only surfaces once
// the first request hits the wire.
//
// VALIDATION FEATURES:
//   - Endpoint URL: HTTP/HTTPS URL format validation
//   - Field mapping: Non-empty, duplicate-free scalar field lists
//   - Required strings: Bearer tokens and column names
//   - Timeouts and worker counts: Positive value validation
//
// Used for validating CLI flags, environment configuration, and submitter
// configuration before a batch run starts.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: http_url, required, min, max - no custom registration needed
}

// ValidateField validates individual values against specified validation rules
// using the go-playground/validator library. Provides flexible validation for
// single fields without requiring struct definitions, useful for dynamic
// validation scenarios.
//
// Supports all built-in validation tags including URL formats, numeric ranges,
// string patterns, and required field validation.
//
// Example: ValidateField("https://api.example.com/upload", "required,http_url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateEndpointURL validates that a string is a well-formed HTTP or HTTPS
// URL suitable for multipart form submission. Rejects empty strings, other
// schemes, and URLs without a host before any row is read from the sheet.
//
// Essential for catching endpoint typos up front: with per-row error isolation
// a bad endpoint would otherwise produce one failure result per row instead of
// a single clear configuration error.
func ValidateEndpointURL(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint URL cannot be empty")
	}
	if err := validate.Var(endpoint, "http_url"); err != nil {
		return fmt.Errorf("invalid endpoint URL '%s': must be an http:// or https:// URL", endpoint)
	}
	return nil
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config validation.
//
// Critical for ensuring required configuration fields like the bearer token
// and the attachment part name are specified before a batch run starts.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Ensures per-row request deadlines don't cause immediate failures or
// infinite waits.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateWorkerCount validates the submission concurrency setting.
// 1 means sequential processing; higher values enable the bounded pool.
func ValidateWorkerCount(workers int) error {
	if err := ValidateField(workers, "required,min=1,max=64"); err != nil {
		return fmt.Errorf("worker count must be between 1 and 64, got %d", workers)
	}
	return nil
}

// ValidateFieldList validates the scalar field mapping used to build payloads
// from sheet rows. Ensures the list is non-empty, contains no blank names,
// and has no duplicates that would silently overwrite each other in the
// multipart body.
//
// Used when parsing the --fields flag and the FORMDROP_FIELDS environment
// variable before any payload is built.
func ValidateFieldList(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("field list cannot be empty")
	}

	seen := make(map[string]bool, len(fields))
	for i, field := range fields {
		name := strings.TrimSpace(field)
		if name == "" {
			return fmt.Errorf("field name at index %d is empty", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate field name '%s'", name)
		}
		seen[name] = true
	}

	return nil
}

// All validation uses built-in validators from go-playground/validator:
// - http_url: validates HTTP/HTTPS URL format
// - min/max: validates numeric ranges
// - required: ensures non-empty values
// Use ValidateField() for single field validation or struct tags for batch validation
