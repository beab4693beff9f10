package sqlward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	t.Run("SchemaOrder", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		columns, err := svc.Columns(context.Background(), "users")
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "email"}, columns)
	})

	t.Run("MissingTable", func(t *testing.T) {
		svc := newTestService(t)

		// SQLite reports no columns rather than an error for unknown tables.
		columns, err := svc.Columns(context.Background(), "no_such_table")
		require.NoError(t, err)
		assert.Empty(t, columns)
	})

	t.Run("ClosedConnection", func(t *testing.T) {
		svc := newTestService(t)
		require.NoError(t, svc.DB().Close())

		_, err := svc.Columns(context.Background(), "users")
		assert.ErrorContains(t, err, "failed to list columns")
	})
}

func TestFilterFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		expected []string
	}{
		{
			name:     "intersection follows schema order",
			fields:   map[string]any{"email": "a@b.c", "name": "Alice"},
			expected: []string{"name", "email"},
		},
		{
			name:     "unknown keys dropped",
			fields:   map[string]any{"name": "Alice", "ghost_field": "x"},
			expected: []string{"name"},
		},
		{
			name:     "all keys unknown",
			fields:   map[string]any{"ghost_field": "x", "phantom": "y"},
			expected: []string{},
		},
		{
			name:     "empty field map",
			fields:   map[string]any{},
			expected: []string{},
		},
		{
			name:     "full schema",
			fields:   map[string]any{"id": 1, "name": "Alice", "email": "a@b.c"},
			expected: []string{"id", "name", "email"},
		},
	}

	svc := newTestService(t)
	createUsersTable(t, svc)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := svc.FilterFields(context.Background(), "users", tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filtered)
		})
	}
}
