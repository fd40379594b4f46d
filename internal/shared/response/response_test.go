package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/shared/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	write(c)
	// The test context defers the status line; body-less writes like a bare
	// 204 need an explicit flush to reach the recorder.
	c.Writer.WriteHeaderNow()
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOKEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) { OK(c, gin.H{"name": "JOHN DOE"}) })

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, map[string]interface{}{"name": "JOHN DOE"}, body["data"])
	assert.Nil(t, body["apiError"])
	assert.NotEmpty(t, body["timeStamp"])
}

func TestCreatedEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) { Created(c, gin.H{"id": "1"}) })

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, decode(t, w)["apiError"])
}

func TestNoContentHasEmptyBody(t *testing.T) {
	w := record(NoContent)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorTranslatesNotFound(t *testing.T) {
	id := uuid.MustParse("1f0e7f41-37fe-4f9e-9a39-0d3b04b3a2da")
	w := record(func(c *gin.Context) { Error(c, apperror.NewNotFound("Author", id)) })

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Nil(t, body["data"])

	apiError := body["apiError"].(map[string]interface{})
	assert.Equal(t, "Author not found by id:1f0e7f41-37fe-4f9e-9a39-0d3b04b3a2da", apiError["message"])
	assert.Equal(t, "NOT_FOUND", apiError["httpStatus"])
	assert.Nil(t, apiError["subErrors"])
}

func TestErrorLeavesUnclassifiedGeneric(t *testing.T) {
	w := record(func(c *gin.Context) { Error(c, errors.New("pq: connection reset")) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiError := decode(t, w)["apiError"].(map[string]interface{})
	assert.Equal(t, "Internal server error", apiError["message"])
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apiError["httpStatus"])
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestValidationFailedKeepsSubErrorOrder(t *testing.T) {
	violations := []string{
		"Title of book must not be Blank after trim",
		"Book publish date should be Past or Present",
	}
	w := record(func(c *gin.Context) { ValidationFailed(c, violations) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	apiError := decode(t, w)["apiError"].(map[string]interface{})
	assert.Equal(t, "Validation failed", apiError["message"])
	assert.Equal(t, "BAD_REQUEST", apiError["httpStatus"])
	assert.Equal(t, []interface{}{
		"Title of book must not be Blank after trim",
		"Book publish date should be Past or Present",
	}, apiError["subErrors"])
}

func TestStatusName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusOK, "OK"},
		{http.StatusBadRequest, "BAD_REQUEST"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusName(tt.code))
	}
}
