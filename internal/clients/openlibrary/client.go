package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	searchPath = "/search.json"
	// probePath is a cheap, stable record used only by the health check.
	probePath = "/books/OL1M.json?m=history"

	userAgent = "library-backend/1.0"
)

// Client queries the OpenLibrary API.
type Client struct {
	httpClient  *http.Client
	probeClient *http.Client
	baseURL     string
	limiter     *rate.Limiter
}

// Doc is one raw book record from search.json. Fields the store does not
// persist are ignored at decode time; no validation happens here.
type Doc struct {
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	EbookAccess      *string  `json:"ebook_access"`
	FirstPublishYear *int     `json:"first_publish_year"`
	Language         []string `json:"language"`
}

type searchResponse struct {
	Docs []Doc `json:"docs"`
}

// NewClient creates an OpenLibrary client. requestTimeout bounds search
// calls, probeTimeout bounds the health probe, rps throttles outbound load.
func NewClient(baseURL string, requestTimeout, probeTimeout time.Duration, rps int) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		probeClient: &http.Client{Timeout: probeTimeout},
		baseURL:     baseURL,
		limiter:     rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchByAuthor fetches all book records matching an author name.
// A single attempt, no retry: a transport failure returns *UnavailableError,
// a non-2xx response *APIError, and an empty result set *NotFoundError.
func (c *Client) SearchByAuthor(ctx context.Context, author string) ([]Doc, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s%s?author=%s", c.baseURL, searchPath, url.QueryEscape(author))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(result.Docs) == 0 {
		return nil, &NotFoundError{Author: author}
	}

	return result.Docs, nil
}

// Ping probes OpenLibrary availability for the health endpoint.
// Only an HTTP 200 within the probe timeout counts as healthy.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+probePath, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return nil
}
