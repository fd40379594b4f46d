package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// MinNameLength is the shortest accepted author name.
const MinNameLength = 3

// AuthorDTO is the transport projection of an Author. The owned book
// collection is deliberately excluded from the wire shape.
type AuthorDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Validate evaluates the declared field constraints one at a time, in
// declaration order, and returns one message per violated constraint.
// An empty result means the payload is valid.
func (d AuthorDTO) Validate() []string {
	var violations []string

	checks := []struct {
		value interface{}
		rule  validation.Rule
	}{
		{
			strings.TrimSpace(d.Name),
			validation.Required.Error("Name of the author must not be Blank after trim"),
		},
		{
			d.Name,
			validation.Length(MinNameLength, 0).Error("Name of the author must be at least 3 characters"),
		},
	}

	for _, check := range checks {
		if err := validation.Validate(check.value, check.rule); err != nil {
			violations = append(violations, err.Error())
		}
	}

	return violations
}

// ToDTO projects an entity into its transport shape. Pure field copy; the
// book back-references never leave the persistence layer.
func (a Author) ToDTO() *AuthorDTO {
	return &AuthorDTO{
		ID:   a.ID,
		Name: a.Name,
	}
}

// ToEntity projects the DTO back into an entity. Relationship fields are not
// part of the DTO, so there is nothing for the service to unset.
func (d AuthorDTO) ToEntity() *Author {
	return &Author{
		ID:   d.ID,
		Name: d.Name,
	}
}
