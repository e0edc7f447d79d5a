package repository

import (
	"context"

	"library-backend/internal/domains/book/model"
)

// RepositoryInterface is the authoritative read/write access to Book and
// Author records.
type RepositoryInterface interface {
	// StoreBooks deduplicates and inserts a batch of raw catalog records
	// inside a single transaction. A record is a duplicate when its title
	// exactly matches an existing book and the author sets intersect at all.
	// An empty batch returns a zero summary without touching storage.
	StoreBooks(ctx context.Context, records []model.BookRecord) (*model.StoreSummary, error)

	// QueryBooks returns books matching the optional filters, each annotated
	// with its authors' names. Read-only; safe for concurrent reads.
	QueryBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)

	// EnsureSchema creates the books, authors and book_authors tables when
	// they do not exist yet.
	EnsureSchema(ctx context.Context) error
}
