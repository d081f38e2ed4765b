// Package fault defines the sentinel errors shared across the album
// library and helpers for tagging failures with component context.
//
// Callers classify errors with errors.Is against the exported markers;
// the detail string stays human-readable for the presentation layer.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks a missing or malformed caller-supplied value.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an operation that targets a URL or ID absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrPersistence marks a failure to read or write the record collection.
	ErrPersistence = errors.New("persistence error")
	// ErrFormat marks a top-level input whose shape was not recognized.
	ErrFormat = errors.New("format error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrPersistence
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "library failure"
	}
	return strings.Join(parts, ": ")
}
