package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   Code
		status int
	}{
		{"not found", NotFound("field", "f-1"), CodeNotFound, http.StatusNotFound},
		{"unauthorized", Unauthorized("no access"), CodeUnauthorized, http.StatusForbidden},
		{"validation", Validation("title is required"), CodeValidation, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("task", "t-1")), CodeNotFound, http.StatusNotFound},
		{"plain error", errors.New("boom"), CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeOf(tt.err))
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeUnknown, "save field", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save field: disk full", err.Error())
	assert.True(t, Is(NotFound("user", "u"), CodeNotFound))
	assert.False(t, Is(nil, CodeNotFound))
}
