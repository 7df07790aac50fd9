// Package upstream defines the error type shared by the external data clients.
package upstream

import "fmt"

// Error reports a failed call to an external data provider. Status is the
// HTTP status code returned upstream, or 0 for transport-level failures
// (connection refused, timeout, unparseable body).
type Error struct {
	Provider string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
