package book

import (
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared"
)

// Book is the persisted book record. A book holds a non-owning reference to
// at most one author; the reference is written only by the dedicated
// assignment operation, never by create or update.
type Book struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"` // stored upper-cased, never blank
	Description string      `json:"description" db:"description"`
	PublishedOn shared.Date `json:"published_on" db:"published_on"`

	AuthorID *uuid.UUID     `json:"author_id" db:"author_id"`
	Author   *author.Author `json:"author"`
}
