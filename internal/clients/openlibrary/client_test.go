package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 2*time.Second, time.Second, 100)
}

func TestSearchByAuthor_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "George Orwell", r.URL.Query().Get("author"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"docs": [
				{"title": "1984", "author_name": ["George Orwell"], "ebook_access": "no_ebook", "first_publish_year": 1949, "language": ["eng"]},
				{"title": "Animal Farm", "author_name": ["George Orwell"], "ebook_access": "no_ebook", "first_publish_year": 1945, "language": ["eng"]}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	docs, err := client.SearchByAuthor(context.Background(), "George Orwell")

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "1984", docs[0].Title)
	assert.Equal(t, []string{"George Orwell"}, docs[0].AuthorNames)
	require.NotNil(t, docs[0].FirstPublishYear)
	assert.Equal(t, 1949, *docs[0].FirstPublishYear)
	assert.Equal(t, "Animal Farm", docs[1].Title)
}

func TestSearchByAuthor_EmptyDocs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	docs, err := client.SearchByAuthor(context.Background(), "xyz123")

	assert.Nil(t, docs)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "xyz123", notFound.Author)
	assert.Contains(t, err.Error(), "no books found for author 'xyz123'")
}

func TestSearchByAuthor_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchByAuthor(context.Background(), "Tolkien")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestSearchByAuthor_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL)
	_, err := client.SearchByAuthor(context.Background(), "Tolkien")

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), "OpenLibrary unavailable")
}

func TestPing_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/OL1M.json", r.URL.Path)
		assert.Equal(t, "history", r.URL.Query().Get("m"))
		_, _ = w.Write([]byte(`{"key": "value"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPing_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.Error(t, client.Ping(context.Background()))
}

func TestPing_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	assert.Error(t, client.Ping(context.Background()))
}
