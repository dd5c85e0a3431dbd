package api

import "fmt"

// APIError is a non-2xx response that carried a usable message, typically a
// server-side validation rejection. The message is surfaced to the user
// verbatim; callers fall back to a generic text when Message is empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.Status)
}
