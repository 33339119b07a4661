package models

import "fmt"

// NotFoundError reports that a place name produced no match.
type NotFoundError struct {
	Place string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("place %q not found", e.Place)
}

// TransportError covers network failures, timeouts, non-success statuses and
// undecodable bodies. StatusCode is zero when no response was received.
type TransportError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP error (status %d): %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// LookupError reports a value with no entry in a classification table.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no %s entry for %q", e.Table, e.Key)
}
