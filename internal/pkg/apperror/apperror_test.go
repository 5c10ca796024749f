package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsAsAndIs(t *testing.T) {
	sentinel := New(http.StatusNotFound, "booking not found")

	wrapped := Wrap(sentinel, http.StatusInternalServerError, "lookup failed")

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, "lookup failed", wrapped.Error())
}
