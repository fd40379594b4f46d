package book

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared"
)

// MinTitleLength is the shortest accepted book title.
const MinTitleLength = 3

// BookDTO is the transport projection of a Book. The author appears as a
// nested author DTO under the legacy "authored_by" key; inbound payloads may
// carry it but it is never used to set the relationship.
type BookDTO struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AuthoredBy  *author.AuthorDTO `json:"authored_by"`
	PublishedOn shared.Date       `json:"publishedOn"`
}

// Validate evaluates the declared field constraints one at a time, in
// declaration order, and returns one message per violated constraint.
func (d BookDTO) Validate() []string {
	var violations []string

	checks := []struct {
		value interface{}
		rule  validation.Rule
	}{
		{
			strings.TrimSpace(d.Title),
			validation.Required.Error("Title of book must not be Blank after trim"),
		},
		{
			d.Title,
			validation.Length(MinTitleLength, 0).Error("Name of the book must be at least 3 characters"),
		},
		{
			strings.TrimSpace(d.Description),
			validation.Required.Error("Description of book must not be Blank after trim"),
		},
		{
			d.PublishedOn,
			validation.By(pastOrPresent),
		},
	}

	for _, check := range checks {
		if err := validation.Validate(check.value, check.rule); err != nil {
			violations = append(violations, err.Error())
		}
	}

	return violations
}

// pastOrPresent rejects publish dates after the current date. An absent
// (zero) date passes; Required-style presence is not part of the contract.
func pastOrPresent(value interface{}) error {
	d, ok := value.(shared.Date)
	if !ok || d.IsZero() {
		return nil
	}
	if d.Time.After(time.Now()) {
		return errors.New("Book publish date should be Past or Present")
	}
	return nil
}

// ToDTO projects an entity into its transport shape. Scalars are copied;
// the author reference becomes a nested author DTO when present.
func (b Book) ToDTO() *BookDTO {
	dto := &BookDTO{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		PublishedOn: b.PublishedOn,
	}
	if b.Author != nil {
		dto.AuthoredBy = b.Author.ToDTO()
	}
	return dto
}

// ToEntity projects the DTO back into an entity. Scalars only: the author
// reference is left unset for the service to manage through the dedicated
// assignment operation.
func (d BookDTO) ToEntity() *Book {
	return &Book{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		PublishedOn: d.PublishedOn,
	}
}
