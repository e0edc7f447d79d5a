package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-backend/internal/clients/openlibrary"
	"library-backend/internal/domains/book/model"
)

type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) SearchByAuthor(ctx context.Context, author string) ([]openlibrary.Doc, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]openlibrary.Doc), args.Error(1)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) StoreBooks(ctx context.Context, records []model.BookRecord) (*model.StoreSummary, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSummary), args.Error(1)
}

func (m *mockRepository) QueryBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestFetchAndStore_Success(t *testing.T) {
	client := new(mockCatalogClient)
	repo := new(mockRepository)
	svc := NewBookService(client, repo)

	docs := []openlibrary.Doc{
		{Title: "1984", AuthorNames: []string{"George Orwell"}, EbookAccess: strPtr("no_ebook"), FirstPublishYear: intPtr(1949), Language: []string{"eng"}},
	}
	client.On("SearchByAuthor", mock.Anything, "George Orwell").Return(docs, nil)

	want := &model.StoreSummary{InsertedBooks: 1, InsertedAuthors: 1}
	repo.On("StoreBooks", mock.Anything, mock.MatchedBy(func(records []model.BookRecord) bool {
		return len(records) == 1 &&
			records[0].Title == "1984" &&
			len(records[0].AuthorNames) == 1 &&
			records[0].AuthorNames[0] == "George Orwell" &&
			*records[0].FirstPublishYear == 1949
	})).Return(want, nil)

	summary, err := svc.FetchAndStore(context.Background(), "George Orwell")

	require.NoError(t, err)
	assert.Equal(t, want, summary)
	client.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestFetchAndStore_NotFound_NeverStores(t *testing.T) {
	client := new(mockCatalogClient)
	repo := new(mockRepository)
	svc := NewBookService(client, repo)

	client.On("SearchByAuthor", mock.Anything, "xyz123").
		Return(nil, &openlibrary.NotFoundError{Author: "xyz123"})

	summary, err := svc.FetchAndStore(context.Background(), "xyz123")

	assert.Nil(t, summary)
	require.ErrorIs(t, err, model.ErrBooksNotFound)
	assert.Contains(t, err.Error(), "xyz123")
	assert.Equal(t, 404, model.ToHTTPStatus(err))
	repo.AssertNotCalled(t, "StoreBooks", mock.Anything, mock.Anything)
}

func TestFetchAndStore_TransportFailure(t *testing.T) {
	client := new(mockCatalogClient)
	repo := new(mockRepository)
	svc := NewBookService(client, repo)

	client.On("SearchByAuthor", mock.Anything, "Tolkien").
		Return(nil, &openlibrary.UnavailableError{Err: errors.New("connection refused")})

	_, err := svc.FetchAndStore(context.Background(), "Tolkien")

	require.ErrorIs(t, err, model.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, http.StatusBadGateway, model.ToHTTPStatus(err))
	repo.AssertNotCalled(t, "StoreBooks", mock.Anything, mock.Anything)
}

func TestFetchAndStore_UpstreamStatusPreserved(t *testing.T) {
	client := new(mockCatalogClient)
	repo := new(mockRepository)
	svc := NewBookService(client, repo)

	client.On("SearchByAuthor", mock.Anything, "Tolkien").
		Return(nil, &openlibrary.APIError{StatusCode: http.StatusTooManyRequests, Status: "429 Too Many Requests"})

	_, err := svc.FetchAndStore(context.Background(), "Tolkien")

	var upstream *model.UpstreamStatusError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, model.ToHTTPStatus(err))
}

func TestList_MapsEntities(t *testing.T) {
	client := new(mockCatalogClient)
	repo := new(mockRepository)
	svc := NewBookService(client, repo)

	books := []model.Book{
		{ID: 1, Title: "1984", Authors: []string{"George Orwell"}, Language: []string{"eng"}},
		{ID: 2, Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}},
	}
	filter := model.BookFilter{Author: "orwell"}
	repo.On("QueryBooks", mock.Anything, filter).Return(books, nil)

	got, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1984", got[0].Title)
	assert.Equal(t, []string{"George Orwell"}, got[0].Authors)
	// nil slices normalized so JSON encodes [] instead of null
	assert.NotNil(t, got[1].Language)
}

func TestList_RepoError(t *testing.T) {
	client := new(mockCatalogClient)
	repo := new(mockRepository)
	svc := NewBookService(client, repo)

	repo.On("QueryBooks", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background(), model.BookFilter{})
	assert.Error(t, err)
}
