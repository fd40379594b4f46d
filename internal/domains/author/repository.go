package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for authors.
// Lookups that miss return apperror.NotFoundError; every other failure is
// wrapped and propagates unclassified.
type Repository interface {
	// Create inserts a new author and returns it with the generated id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves one author by id.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves every author in storage-native order.
	GetAll(ctx context.Context) ([]Author, error)

	// Update replaces the stored record for a.ID with a's fields.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes an author by id. The database cascades the delete to
	// the author's books within the same statement.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByName retrieves all authors whose name matches exactly.
	GetByName(ctx context.Context, name string) ([]Author, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
