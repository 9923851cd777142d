package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "earnhub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response with the status the domain error maps to
func Error(c *gin.Context, err error) {
	c.JSON(domainerrors.StatusOf(err), gin.H{
		"error": err.Error(),
	})
}

// ErrorWithMessage sends an error response with an explicit message,
// keeping the status mapping of the underlying error.
func ErrorWithMessage(c *gin.Context, err error, message string) {
	c.JSON(domainerrors.StatusOf(err), gin.H{
		"error": message,
	})
}
