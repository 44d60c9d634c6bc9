package dto

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "desired_packs: must be a positive integer")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "desired_packs: must be a positive integer", err.Message)
	assert.Empty(t, err.RequestID)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeNotFound, "recipe not found").WithRequestID("req-42")

	assert.Equal(t, "req-42", err.RequestID)
	assert.Equal(t, ErrCodeNotFound, err.Error)
	assert.Equal(t, "recipe not found", err.Message)

	// Value receiver: the original is untouched.
	base := NewError(ErrCodeConflict, "recipe name already exists")
	_ = base.WithRequestID("req-43")
	assert.Empty(t, base.RequestID)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, ErrCodeInvalidRequest},
		{401, ErrCodeUnauthorized},
		{403, ErrCodeForbidden},
		{404, ErrCodeNotFound},
		{408, ErrCodeTimeout},
		{409, ErrCodeConflict},
		{422, ErrCodeValidation},
		{429, ErrCodeRateLimit},
		{500, ErrCodeInternal},
		{502, ErrCodeInternal},
		{503, ErrCodeInternal},
		{504, ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status))
		})
	}
}
