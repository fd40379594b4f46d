package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for authors. All operations accept
// and return DTOs; entity shapes stay behind this boundary.
type Service interface {
	// ListAll returns every author in storage-native order.
	ListAll(ctx context.Context) ([]AuthorDTO, error)

	// GetByID returns one author or a NotFound error.
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorDTO, error)

	// Create upper-cases the name, persists, and returns the stored author
	// with its generated id. Field constraints are checked upstream.
	Create(ctx context.Context, dto AuthorDTO) (*AuthorDTO, error)

	// UpdateByID full-replaces the author with the given id. The id in the
	// payload is overridden by the path id and the name is re-normalized.
	// Returns NotFound if no such author exists.
	UpdateByID(ctx context.Context, id uuid.UUID, dto AuthorDTO) (*AuthorDTO, error)

	// DeleteByID removes the author (and, via the storage engine, its
	// books). Returns NotFound if no such author exists.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ListByName upper-cases the argument and returns all exact matches,
	// possibly none.
	ListByName(ctx context.Context, name string) ([]AuthorDTO, error)
}
