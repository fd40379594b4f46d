package apperror

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError signals that a lookup by id yielded no record.
// Services return it from failed existence checks; the response layer
// translates it to HTTP 404. The message format is part of the public API
// contract and must stay exactly "<Resource> not found by id:<id>".
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found by id:%s", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the given resource kind and id.
func NewNotFound(resource string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
