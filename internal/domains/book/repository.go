package book

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/shared"
)

// Repository is the data-access contract for books. Reads join the author
// row so projections can embed it. Lookups that miss return
// apperror.NotFoundError; other failures propagate unclassified.
type Repository interface {
	// Create inserts a new book with no author reference and returns it
	// with the generated id.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID retrieves one book by id, author included when linked.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll retrieves every book in storage-native order.
	GetAll(ctx context.Context) ([]Book, error)

	// Update replaces the scalar fields of the stored record for b.ID.
	// The author reference is preserved as stored.
	Update(ctx context.Context, b *Book) (*Book, error)

	// SetAuthor points the book's author reference at the given author and
	// returns the re-read, linked book.
	SetAuthor(ctx context.Context, bookID, authorID uuid.UUID) (*Book, error)

	// Delete removes a book by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByTitle retrieves all books whose title matches exactly.
	GetByTitle(ctx context.Context, title string) ([]Book, error)

	// GetPublishedAfter retrieves books published strictly after date.
	GetPublishedAfter(ctx context.Context, date shared.Date) ([]Book, error)

	// GetByAuthor retrieves books whose author reference equals authorID.
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
