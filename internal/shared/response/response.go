package response

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/apperror"
)

// APIError is the structured error half of the envelope.
// HTTPStatus serializes as the status enum name (NOT_FOUND, BAD_REQUEST, ...)
// to stay wire-compatible with existing API consumers.
type APIError struct {
	Message    string   `json:"message"`
	HTTPStatus string   `json:"httpStatus"`
	SubErrors  []string `json:"subErrors"`
}

// APIResponse is the uniform envelope returned by every endpoint.
// Exactly one of Data and APIError is non-null.
type APIResponse struct {
	Data      interface{} `json:"data"`
	APIError  *APIError   `json:"apiError"`
	TimeStamp time.Time   `json:"timeStamp"`
}

func envelope(data interface{}, apiErr *APIError) APIResponse {
	return APIResponse{
		Data:      data,
		APIError:  apiErr,
		TimeStamp: time.Now(),
	}
}

// statusName renders an HTTP status code as its upper-snake enum name,
// e.g. 404 -> "NOT_FOUND".
func statusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

// OK writes a 200 envelope with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope(data, nil))
}

// Created writes a 201 envelope with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope(data, nil))
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error translates a service failure into an error envelope.
// NotFound maps to 404 with the failure's own message. Anything else is
// unclassified and falls through to a generic 500; the concrete cause is
// never leaked to the client.
func Error(c *gin.Context, err error) {
	if apperror.IsNotFound(err) {
		writeError(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	writeError(c, http.StatusInternalServerError, "Internal server error", nil)
}

// ValidationFailed writes a 400 envelope carrying one sub-error per violated
// constraint, in evaluation order.
func ValidationFailed(c *gin.Context, violations []string) {
	writeError(c, http.StatusBadRequest, "Validation failed", violations)
}

// BadRequest writes a 400 envelope for malformed input that never reached
// field validation (unreadable JSON body, non-UUID path parameter).
func BadRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, message, nil)
}

// TooManyRequests writes a 429 envelope for rate-limited clients.
func TooManyRequests(c *gin.Context, message string) {
	writeError(c, http.StatusTooManyRequests, message, nil)
}

// InternalServerError writes the generic 500 envelope.
func InternalServerError(c *gin.Context, message string) {
	writeError(c, http.StatusInternalServerError, message, nil)
}

func writeError(c *gin.Context, code int, message string, subErrors []string) {
	c.JSON(code, envelope(nil, &APIError{
		Message:    message,
		HTTPStatus: statusName(code),
		SubErrors:  subErrors,
	}))
}
