package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewNotFoundError("dataset file"),
			expected: "[NOT_FOUND] dataset file not found",
		},
		{
			name:     "with cause",
			err:      NewStorageError("failed to write CSV", stderrors.New("disk full")),
			expected: "[STORAGE] failed to write CSV: disk full",
		},
		{
			name:     "validation",
			err:      NewValidationError("duration must be non-negative"),
			expected: "[VALIDATION] duration must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewStorageError("failed to open dataset", os.ErrNotExist)

	assert.True(t, stderrors.Is(err, os.ErrNotExist))

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppErrorWithContext(t *testing.T) {
	err := NewParsingError("unreadable cell", nil).
		WithContext("column", "fecha_contacto").
		WithContext("row", 42)

	assert.Equal(t, "fecha_contacto", err.Context["column"])
	assert.Equal(t, 42, err.Context["row"])
}
