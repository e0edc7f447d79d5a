package service

import (
	"context"
	"errors"
	"fmt"

	"library-backend/internal/clients/openlibrary"
	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
)

type bookService struct {
	client CatalogClient
	repo   repository.RepositoryInterface
}

func NewBookService(client CatalogClient, repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{
		client: client,
		repo:   repo,
	}
}

func (s *bookService) FetchAndStore(ctx context.Context, author string) (*model.StoreSummary, error) {
	docs, err := s.client.SearchByAuthor(ctx, author)
	if err != nil {
		return nil, translateClientError(err, author)
	}

	records := make([]model.BookRecord, len(docs))
	for i, doc := range docs {
		records[i] = model.BookRecord{
			Title:            doc.Title,
			AuthorNames:      doc.AuthorNames,
			EbookAccess:      doc.EbookAccess,
			FirstPublishYear: doc.FirstPublishYear,
			Language:         doc.Language,
		}
	}

	return s.repo.StoreBooks(ctx, records)
}

func (s *bookService) List(ctx context.Context, filter model.BookFilter) ([]model.BookResponse, error) {
	books, err := s.repo.QueryBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]model.BookResponse, len(books))
	for i := range books {
		responses[i] = books[i].ToResponse()
	}
	return responses, nil
}

// translateClientError maps client error types onto the service taxonomy:
// transport failures become a bad-gateway class error carrying the upstream
// detail, no-results keeps the author name, and upstream application errors
// preserve their own status code.
func translateClientError(err error, author string) error {
	var unavailable *openlibrary.UnavailableError
	var apiErr *openlibrary.APIError
	var notFound *openlibrary.NotFoundError

	switch {
	case errors.As(err, &unavailable):
		return fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, unavailable.Err)
	case errors.As(err, &notFound):
		return fmt.Errorf("%w '%s'", model.ErrBooksNotFound, author)
	case errors.As(err, &apiErr):
		return &model.UpstreamStatusError{
			StatusCode: apiErr.StatusCode,
			Detail:     apiErr.Error(),
		}
	default:
		return err
	}
}
