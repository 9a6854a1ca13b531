package allowance

import "fmt"

// ValidationError reports an input record that violates a domain invariant.
// Field names the offending input field (snake_case, matching the JSON
// representation) and Reason states the violated rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// errNegative builds the validation error for a negative numeric field.
func errNegative(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must not be negative"}
}
