package service

import (
	"context"

	"library-backend/internal/clients/openlibrary"
	"library-backend/internal/domains/book/model"
)

// CatalogClient is the slice of the OpenLibrary client the service needs.
type CatalogClient interface {
	SearchByAuthor(ctx context.Context, author string) ([]openlibrary.Doc, error)
}

// ServiceInterface composes the catalog client and the book store.
type ServiceInterface interface {
	// FetchAndStore fetches books for an author from the external catalog and
	// stores them. Client failures are translated per the error taxonomy and
	// the store is never reached on failure.
	FetchAndStore(ctx context.Context, author string) (*model.StoreSummary, error)

	// List returns stored books matching the optional filters in their
	// public response shape.
	List(ctx context.Context, filter model.BookFilter) ([]model.BookResponse, error)
}
