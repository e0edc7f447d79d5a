package model

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBooksNotFound - the external catalog matched no books for the
	// requested author.
	ErrBooksNotFound = errors.New("no books found for author")

	// ErrUpstreamUnavailable - transport failure reaching the external
	// catalog during a fetch-and-store workflow.
	ErrUpstreamUnavailable = errors.New("failed to fetch books from OpenLibrary")
)

// UpstreamStatusError preserves a non-2xx application error from the
// external catalog so the caller sees the upstream's own status code.
type UpstreamStatusError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamStatusError) Error() string {
	return e.Detail
}

// ToHTTPStatus maps service errors onto HTTP status codes.
func ToHTTPStatus(err error) int {
	var upstream *UpstreamStatusError
	switch {
	case errors.Is(err, ErrBooksNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.As(err, &upstream):
		return upstream.StatusCode
	default:
		return http.StatusInternalServerError
	}
}

// NotFoundDetail renders the 404 message with the author name embedded.
func NotFoundDetail(author string) string {
	return fmt.Sprintf("No books found for author '%s'", author)
}
