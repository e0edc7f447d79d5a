package repository

import (
	"context"
	"fmt"
)

// Schema bootstrap. Deliberately plain CREATE TABLE IF NOT EXISTS, not a
// migrations framework.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS books (
    id                 BIGSERIAL PRIMARY KEY,
    title              TEXT NOT NULL,
    ebook_access       TEXT,
    first_publish_year INTEGER,
    language           TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS authors (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS book_authors (
    book_id   BIGINT NOT NULL REFERENCES books (id) ON DELETE CASCADE,
    author_id BIGINT NOT NULL REFERENCES authors (id) ON DELETE CASCADE,
    PRIMARY KEY (book_id, author_id)
);
`

func (r *postgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
