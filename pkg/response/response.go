// Package response writes JSON success and error bodies for gin handlers.
package response

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"github.com/elmufurqaan/site/backend/go-services/pkg/logger"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// HandleError maps err to a JSON error response and reports whether it wrote one.
// Internal errors are logged with their cause; the client only sees the message.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	e, ok := apperr.As(err)
	if !ok {
		e = apperr.Internal("Internal server error", err)
	}
	status := e.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Errorw(e.Message, "op", e.Op, "error", e.Err, "path", c.FullPath())
	}
	c.JSON(status, ErrorResponse{Error: e.Message, Errors: e.Fields})
	return true
}

// BindJSON decodes the request body into dst. An empty body leaves dst at its
// zero value; malformed JSON writes a 400 and returns false.
func BindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		Error(c, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
