package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared"
	"library-backend/internal/shared/response"
)

// BookHandler adapts HTTP requests to the book service.
type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// ListAll handles GET /book.
func (h *BookHandler) ListAll(c *gin.Context) {
	books, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, books)
}

// GetByID handles GET /book/:bookId.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "bookId", "Invalid book id")
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto)
}

// Create handles POST /book.
func (h *BookHandler) Create(c *gin.Context) {
	var dto book.BookDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Malformed request body")
		return
	}

	if violations := dto.Validate(); len(violations) > 0 {
		response.ValidationFailed(c, violations)
		return
	}

	created, err := h.service.Create(c.Request.Context(), dto)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

// UpdateByID handles PUT /book/:bookId.
func (h *BookHandler) UpdateByID(c *gin.Context) {
	id, ok := parseID(c, "bookId", "Invalid book id")
	if !ok {
		return
	}

	var dto book.BookDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Malformed request body")
		return
	}

	if violations := dto.Validate(); len(violations) > 0 {
		response.ValidationFailed(c, violations)
		return
	}

	updated, err := h.service.UpdateByID(c.Request.Context(), id, dto)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

// DeleteByID handles DELETE /book/:bookId.
func (h *BookHandler) DeleteByID(c *gin.Context) {
	id, ok := parseID(c, "bookId", "Invalid book id")
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListPublishedAfter handles GET /book/getAfterDate/:date.
func (h *BookHandler) ListPublishedAfter(c *gin.Context) {
	date, err := shared.ParseDate(c.Param("date"))
	if err != nil {
		response.BadRequest(c, "Invalid date, expected yyyy-MM-dd")
		return
	}

	books, err := h.service.ListPublishedAfter(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, books)
}

// ListByTitle handles GET /book/title/:title.
func (h *BookHandler) ListByTitle(c *gin.Context) {
	books, err := h.service.ListByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, books)
}

// ListByAuthor handles GET /book/createdBy/:authorId.
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, "authorId", "Invalid author id")
	if !ok {
		return
	}

	books, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, books)
}

// AssignAuthor handles PUT /book/:bookId/assignAuthorToBook/:authorId.
func (h *BookHandler) AssignAuthor(c *gin.Context) {
	bookID, ok := parseID(c, "bookId", "Invalid book id")
	if !ok {
		return
	}
	authorID, ok := parseID(c, "authorId", "Invalid author id")
	if !ok {
		return
	}

	dto, err := h.service.AssignAuthor(c.Request.Context(), bookID, authorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto)
}

func parseID(c *gin.Context, param, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, message)
		return uuid.Nil, false
	}
	return id, true
}
