package model

// Book is one published work persisted in the local database.
// Authors is derived at query time from the book_authors association and is
// never written back.
type Book struct {
	ID               int64    `json:"id" db:"id"`
	Title            string   `json:"title" db:"title"`
	EbookAccess      *string  `json:"ebook_access" db:"ebook_access"`
	FirstPublishYear *int     `json:"first_publish_year" db:"first_publish_year"`
	Language         []string `json:"language" db:"language"`
	Authors          []string `json:"authors"`
}

// Author is a person credited on one or more books. Name carries a unique
// constraint; one row exists per distinct name.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// BookRecord is a single raw book entry from the external catalog, prior to
// persistence.
type BookRecord struct {
	Title            string
	AuthorNames      []string
	EbookAccess      *string
	FirstPublishYear *int
	Language         []string
}

// BookFilter holds the optional query filters. Both are case-insensitive
// substring matches and compose with AND.
type BookFilter struct {
	Author string
	Title  string
}
