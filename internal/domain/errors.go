package domain

import "fmt"

// ValidationError marks missing or invalid caller input. It is
// request-fatal and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ProviderError wraps a failed external call (geocoder or calculator).
// It is recovered locally — via the static distance fallback or a
// per-company failed quote — and only surfaces when distance cannot be
// established for the whole batch.
type ProviderError struct {
	Provider string
	Timeout  bool
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("provider %s: timeout: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CalculatorAPIError reports a non-success or malformed response from a
// company's delegated calculator.
type CalculatorAPIError struct {
	Company string
	Status  int
	Body    string
}

func (e *CalculatorAPIError) Error() string {
	return fmt.Sprintf("calculator %s: status %d: %s", e.Company, e.Status, e.Body)
}
