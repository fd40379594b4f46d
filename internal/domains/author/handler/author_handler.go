package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

// AuthorHandler adapts HTTP requests to the author service. No business
// logic lives here beyond parameter extraction and success-status selection.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ListAll handles GET /author.
func (h *AuthorHandler) ListAll(c *gin.Context) {
	authors, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, authors)
}

// GetByID handles GET /author/:authorId.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseAuthorID(c)
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

// Create handles POST /author.
func (h *AuthorHandler) Create(c *gin.Context) {
	var dto author.AuthorDTO
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

// UpdateByID handles PUT /author/:authorId.
func (h *AuthorHandler) UpdateByID(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	var dto author.AuthorDTO
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

// DeleteByID handles DELETE /author/:authorId.
func (h *AuthorHandler) DeleteByID(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListByName handles GET /author/name/:name.
func (h *AuthorHandler) ListByName(c *gin.Context) {
	authors, err := h.service.ListByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, authors)
}

func parseAuthorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("authorId"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return uuid.Nil, false
	}
	return id, true
}
