package author

import (
	"github.com/google/uuid"
)

// Author is the persisted author record. The owned book collection lives on
// the book side as an author_id foreign key; deleting an author cascades to
// its books inside the database (ON DELETE CASCADE), not in service code.
type Author struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"` // stored upper-cased, never blank
}
