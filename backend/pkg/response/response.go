package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope every endpoint uses. Successful responses
// write their payload directly; the frontend contract keys errors on the
// single "error" field.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK writes a 200 with the payload as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ── Shortcuts for the common statuses ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// UnprocessableEntity 422
func UnprocessableEntity(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error. Please try again later.")
}
