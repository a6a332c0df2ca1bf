package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFound("x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal("x", nil).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, New(KindUnknown, "x").HTTPStatus())
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("socket closed")
	err := Internal("Failed to fetch blogs", cause).WithOp("blog.List")
	require.Equal(t, "blog.List: Failed to fetch blogs: socket closed", err.Error())
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("handler: %w", err)
	e, ok := As(wrapped)
	require.True(t, ok)
	require.Equal(t, "Failed to fetch blogs", e.Message)
	require.True(t, Is(wrapped, KindInternal))
	require.False(t, Is(wrapped, KindNotFound))

	_, ok = As(cause)
	require.False(t, ok)
}

func TestFieldErrors(t *testing.T) {
	err := FieldErrors("Validation failed", map[string]string{"email": "Invalid email format"})
	require.Equal(t, KindValidation, err.Kind)
	require.Equal(t, "Invalid email format", err.Fields["email"])
}
