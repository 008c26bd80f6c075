package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := New(CodeValidation, "claimAmount must be positive")

	assert.True(t, Is(err, CodeValidation))
	assert.False(t, Is(err, CodeInternal))
	assert.True(t, Is(fmt.Errorf("adjudicate: %w", err), CodeValidation), "wrapped errors keep their code")
	assert.False(t, Is(errors.New("plain"), CodeValidation))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeValidation, CodeOf(New(CodeValidation, "bad")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")), "untyped errors default to internal")
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "policyId is required", MessageOf(New(CodeValidation, "policyId is required")))
	assert.Equal(t, "internal error", MessageOf(New(CodeInternal, "db exploded")), "internal detail is never exposed")
	assert.Equal(t, "internal error", MessageOf(errors.New("plain")))
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.code), "code %s", tt.code)
	}
}
