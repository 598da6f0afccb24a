package errors_test

import (
	"testing"

	"github.com/pm2openapi/pm2openapi/errors"
	"github.com/stretchr/testify/assert"
)

func TestError_Error_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      errors.Error
		expected string
	}{
		{
			name:     "simple error message",
			err:      errors.Error("test error"),
			expected: "test error",
		},
		{
			name:     "empty error message",
			err:      errors.Error(""),
			expected: "",
		},
		{
			name:     "error with special characters",
			err:      errors.Error("error: failed to parse JSON"),
			expected: "error: failed to parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := tt.err.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         errors.Error
		cause       error
		expectedMsg string
	}{
		{
			name:        "wrap with cause",
			err:         errors.Error("wrapper error"),
			cause:       assert.AnError,
			expectedMsg: "wrapper error" + errors.ErrSeperator + assert.AnError.Error(),
		},
		{
			name:        "wrap with nil cause",
			err:         errors.Error("wrapper error"),
			cause:       nil,
			expectedMsg: "wrapper error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := tt.err.Wrap(tt.cause)
			assert.Equal(t, tt.expectedMsg, wrapped.Error())
		})
	}
}

func TestWrappedError_Unwrap_Success(t *testing.T) {
	t.Parallel()
	cause := assert.AnError
	wrapped := errors.Error("wrapper").Wrap(cause)

	unwrapped := wrapped.(interface{ Unwrap() error }).Unwrap()
	assert.Equal(t, cause, unwrapped)
}

func TestWrappedError_Unwrap_NilCause(t *testing.T) {
	t.Parallel()
	wrapped := errors.Error("wrapper").Wrap(nil)

	unwrapped := wrapped.(interface{ Unwrap() error }).Unwrap()
	assert.Nil(t, unwrapped)
}
