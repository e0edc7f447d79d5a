package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/database"
)

// postgresRepository implements RepositoryInterface with raw SQL over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// StoreBooks processes the batch in input order inside one transaction.
// Counts are accumulated per record; a failure anywhere aborts the whole
// batch.
func (r *postgresRepository) StoreBooks(ctx context.Context, records []model.BookRecord) (*model.StoreSummary, error) {
	summary := &model.StoreSummary{}
	if len(records) == 0 {
		return summary, nil
	}

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, rec := range records {
			dup, err := r.isDuplicate(ctx, tx, rec)
			if err != nil {
				return err
			}
			if dup {
				summary.DuplicatesCount++
				continue
			}

			authorIDs, created, err := r.resolveAuthors(ctx, tx, rec.AuthorNames)
			if err != nil {
				return err
			}
			summary.InsertedAuthors += created

			if err := r.insertBook(ctx, tx, rec, authorIDs); err != nil {
				return err
			}
			summary.InsertedBooks++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.BuildMessage()
	return summary, nil
}

// isDuplicate checks for an existing book with the same title whose author
// set intersects the record's author list at all. Any overlap counts - the
// criterion is deliberately looser than set equality.
func (r *postgresRepository) isDuplicate(ctx context.Context, tx pgx.Tx, rec model.BookRecord) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1
            FROM books b
            JOIN book_authors ba ON ba.book_id = b.id
            JOIN authors a ON a.id = ba.author_id
            WHERE b.title = $1 AND a.name = ANY($2)
        )
    `

	var exists bool
	if err := tx.QueryRow(ctx, query, rec.Title, rec.AuthorNames).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for duplicate book: %w", err)
	}
	return exists, nil
}

// resolveAuthors maps author names to row IDs, creating missing authors.
// Inserts happen inside the batch transaction, so a name created for an
// earlier record is found by exact-name lookup for later ones. The insert is
// conflict-tolerant: the unique constraint on name is the backstop against a
// concurrent request creating the same author first.
func (r *postgresRepository) resolveAuthors(ctx context.Context, tx pgx.Tx, names []string) ([]int64, int, error) {
	ids := make([]int64, 0, len(names))
	created := 0
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM authors WHERE name = $1`, name).Scan(&id)
		if err == nil {
			ids = append(ids, id)
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, fmt.Errorf("failed to look up author %q: %w", name, err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO authors (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id`,
			name,
		).Scan(&id)
		switch {
		case err == nil:
			created++
		case errors.Is(err, pgx.ErrNoRows):
			// Lost the race to a concurrent insert; fetch the winner's row.
			if err := tx.QueryRow(ctx, `SELECT id FROM authors WHERE name = $1`, name).Scan(&id); err != nil {
				return nil, 0, fmt.Errorf("failed to fetch author %q after conflict: %w", name, err)
			}
		default:
			return nil, 0, fmt.Errorf("failed to create author %q: %w", name, err)
		}

		ids = append(ids, id)
	}

	return ids, created, nil
}

func (r *postgresRepository) insertBook(ctx context.Context, tx pgx.Tx, rec model.BookRecord, authorIDs []int64) error {
	language := rec.Language
	if language == nil {
		language = []string{}
	}

	var bookID int64
	err := tx.QueryRow(ctx,
		`INSERT INTO books (title, ebook_access, first_publish_year, language)
         VALUES ($1, $2, $3, $4) RETURNING id`,
		rec.Title, rec.EbookAccess, rec.FirstPublishYear, language,
	).Scan(&bookID)
	if err != nil {
		return fmt.Errorf("failed to insert book %q: %w", rec.Title, err)
	}

	for _, authorID := range authorIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)`,
			bookID, authorID,
		)
		if err != nil {
			return fmt.Errorf("failed to link book %q to author: %w", rec.Title, err)
		}
	}

	return nil
}

// QueryBooks builds the filter clause dynamically. The author filter narrows
// which books match but each result still lists all of that book's authors.
func (r *postgresRepository) QueryBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT b.id, b.title, b.ebook_access, b.first_publish_year, b.language,
               COALESCE(array_agg(a.name ORDER BY a.id) FILTER (WHERE a.id IS NOT NULL), '{}')
        FROM books b
        LEFT JOIN book_authors ba ON ba.book_id = b.id
        LEFT JOIN authors a ON a.id = ba.author_id
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Author != "" {
		queryBuilder.WriteString(fmt.Sprintf(`
            AND EXISTS (
                SELECT 1 FROM book_authors ba2
                JOIN authors a2 ON a2.id = ba2.author_id
                WHERE ba2.book_id = b.id AND a2.name ILIKE $%d
            )`, argPos))
		args = append(args, "%"+filter.Author+"%")
		argPos++
	}

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Title+"%")
		argPos++
	}

	queryBuilder.WriteString(" GROUP BY b.id ORDER BY b.id")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.EbookAccess,
			&b.FirstPublishYear,
			&b.Language,
			&b.Authors,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}
