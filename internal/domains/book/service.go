package book

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/shared"
)

// Service is the business-logic contract for books.
type Service interface {
	// ListAll returns every book in storage-native order.
	ListAll(ctx context.Context) ([]BookDTO, error)

	// GetByID returns one book or a NotFound error.
	GetByID(ctx context.Context, id uuid.UUID) (*BookDTO, error)

	// Create upper-cases the title, persists the book without an author
	// reference, and returns it with the generated id.
	Create(ctx context.Context, dto BookDTO) (*BookDTO, error)

	// UpdateByID full-replaces the scalar fields of the book with the given
	// id; the stored author reference is untouched. Returns NotFound if no
	// such book exists.
	UpdateByID(ctx context.Context, id uuid.UUID, dto BookDTO) (*BookDTO, error)

	// DeleteByID removes the book. Returns NotFound if absent.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ListPublishedAfter returns books published strictly after date.
	ListPublishedAfter(ctx context.Context, date shared.Date) ([]BookDTO, error)

	// ListByTitle upper-cases the argument and returns all exact matches.
	ListByTitle(ctx context.Context, title string) ([]BookDTO, error)

	// ListByAuthor fails NotFound if the author is absent, otherwise
	// returns the books referencing that author.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]BookDTO, error)

	// AssignAuthor links the book to the author and returns the linked
	// projection. The book is checked first: when both are missing, the
	// error names the book.
	AssignAuthor(ctx context.Context, bookID, authorID uuid.UUID) (*BookDTO, error)
}
