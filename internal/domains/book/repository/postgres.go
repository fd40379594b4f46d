package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared"
	"library-backend/internal/shared/apperror"
)

// postgresRepository implements book.Repository on top of pgxpool.
// Every read joins the authors table so the author reference comes back in
// one round trip.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const selectBook = `
        SELECT b.id, b.title, b.description, b.published_on, b.author_id, a.name
        FROM books b
        LEFT JOIN authors a ON a.id = b.author_id
`

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, description, published_on)
        VALUES ($1, $2, $3)
        RETURNING id
    `

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, b.Title, b.Description, publishedOnParam(b)).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := selectBook + `
        WHERE b.id = $1
    `

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Book", id)
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, selectBook)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	// Scalar fields only. author_id is written exclusively by SetAuthor.
	query := `
        UPDATE books
        SET title = $2, description = $3, published_on = $4
        WHERE id = $1
    `

	tag, err := r.pool.Exec(ctx, query, b.ID, b.Title, b.Description, publishedOnParam(b))
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFound("Book", b.ID)
	}

	return r.GetByID(ctx, b.ID)
}

func (r *postgresRepository) SetAuthor(ctx context.Context, bookID, authorID uuid.UUID) (*book.Book, error) {
	query := `
        UPDATE books
        SET author_id = $2
        WHERE id = $1
    `

	tag, err := r.pool.Exec(ctx, query, bookID, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign author to book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFound("Book", bookID)
	}

	return r.GetByID(ctx, bookID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM books
        WHERE id = $1
    `

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Book", id)
	}

	return nil
}

func (r *postgresRepository) GetByTitle(ctx context.Context, title string) ([]book.Book, error) {
	query := selectBook + `
        WHERE b.title = $1
    `

	rows, err := r.pool.Query(ctx, query, title)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by title: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) GetPublishedAfter(ctx context.Context, date shared.Date) ([]book.Book, error) {
	// Strict inequality: books published exactly on the date are excluded.
	query := selectBook + `
        WHERE b.published_on > $1
    `

	rows, err := r.pool.Query(ctx, query, date.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to list books published after date: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := selectBook + `
        WHERE b.author_id = $1
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}

	return exists, nil
}

// publishedOnParam maps the zero date to SQL NULL.
func publishedOnParam(b *book.Book) *time.Time {
	if b.PublishedOn.IsZero() {
		return nil
	}
	return &b.PublishedOn.Time
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var publishedOn *time.Time
	var authorName *string

	err := row.Scan(&b.ID, &b.Title, &b.Description, &publishedOn, &b.AuthorID, &authorName)
	if err != nil {
		return nil, err
	}

	if publishedOn != nil {
		b.PublishedOn = shared.Date{Time: *publishedOn}
	}
	if b.AuthorID != nil && authorName != nil {
		b.Author = &author.Author{ID: *b.AuthorID, Name: *authorName}
	}

	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book rows: %w", err)
	}

	return books, nil
}
