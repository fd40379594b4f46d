package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessage(t *testing.T) {
	id := uuid.MustParse("b9b25bd8-6c04-4b14-9a9f-1f9e2f1f6c1a")

	err := NewNotFound("Author", id)
	assert.Equal(t, "Author not found by id:b9b25bd8-6c04-4b14-9a9f-1f9e2f1f6c1a", err.Error())

	err = NewNotFound("Book", id)
	assert.Equal(t, "Book not found by id:b9b25bd8-6c04-4b14-9a9f-1f9e2f1f6c1a", err.Error())
}

func TestIsNotFound(t *testing.T) {
	nf := NewNotFound("Author", uuid.New())

	assert.True(t, IsNotFound(nf))
	assert.True(t, IsNotFound(fmt.Errorf("lookup failed: %w", nf)))
	assert.False(t, IsNotFound(errors.New("connection reset")))
	assert.False(t, IsNotFound(nil))
}
