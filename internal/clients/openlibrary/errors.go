package openlibrary

import "fmt"

// UnavailableError reports a transport-level failure reaching OpenLibrary
// (connection refused, timeout, DNS failure).
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("OpenLibrary unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from OpenLibrary, preserving the
// upstream status code.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenLibrary API error: %s", e.Status)
}

// NotFoundError reports a successful search that matched no books.
type NotFoundError struct {
	Author string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no books found for author '%s'", e.Author)
}
