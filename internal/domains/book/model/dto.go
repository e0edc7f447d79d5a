package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// StoreBooksRequest - POST /books
type StoreBooksRequest struct {
	Author string `json:"author"`
}

func (r StoreBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
	)
}

// StoreSummary is the outcome of one store-books call. Counts reflect
// per-record outcomes; durability is all-or-nothing per batch.
type StoreSummary struct {
	InsertedBooks   int    `json:"inserted_books"`
	InsertedAuthors int    `json:"inserted_authors"`
	DuplicatesCount int    `json:"duplicates_count"`
	Message         string `json:"message"`
}

// BuildMessage fills Message from DuplicatesCount: empty when zero,
// otherwise a pluralized duplicate notice.
func (s *StoreSummary) BuildMessage() {
	if s.DuplicatesCount == 0 {
		s.Message = ""
		return
	}
	plural := "s"
	if s.DuplicatesCount == 1 {
		plural = ""
	}
	s.Message = fmt.Sprintf("%d book%s of requested author already exist in the database",
		s.DuplicatesCount, plural)
}

// BookResponse - GET /books item shape
type BookResponse struct {
	Title            string   `json:"title"`
	EbookAccess      *string  `json:"ebook_access"`
	FirstPublishYear *int     `json:"first_publish_year"`
	Authors          []string `json:"authors"`
	Language         []string `json:"language"`
}

// ToResponse converts a Book entity to its public shape.
func (b *Book) ToResponse() BookResponse {
	authors := b.Authors
	if authors == nil {
		authors = []string{}
	}
	language := b.Language
	if language == nil {
		language = []string{}
	}
	return BookResponse{
		Title:            b.Title,
		EbookAccess:      b.EbookAccess,
		FirstPublishYear: b.FirstPublishYear,
		Authors:          authors,
		Language:         language,
	}
}

// HealthResponse - GET /health
type HealthResponse struct {
	AppStatus         string `json:"app_status"`
	ExternalAPIStatus string `json:"external_api_status"`
}
