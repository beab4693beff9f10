package sqlward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Run("FiltersUnknownFields", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Insert(context.Background(), "users", map[string]any{
			"name":        "Alice",
			"ghost_field": "x",
		})
		require.False(t, res.Failed())
		assert.Equal(t, "INSERT INTO users (name) VALUES (:name)", res.SQL)
		assert.Equal(t, map[string]any{"name": "Alice"}, res.Bindings)
		assert.Equal(t, int64(1), res.LastInsertID)

		rows := svc.Select(context.Background(), "users", "id = :id", map[string]any{"id": res.LastInsertID})
		require.False(t, rows.Failed())
		require.Len(t, rows.Rows, 1)
		assert.Equal(t, "Alice", rows.Rows[0]["name"])
		assert.Nil(t, rows.Rows[0]["email"])
	})

	t.Run("ColumnsFollowSchemaOrder", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Insert(context.Background(), "users", map[string]any{
			"email": "alice@example.com",
			"name":  "Alice",
		})
		require.False(t, res.Failed())
		assert.Equal(t, "INSERT INTO users (name, email) VALUES (:name, :email)", res.SQL)
	})

	t.Run("NoMatchingColumns", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Insert(context.Background(), "users", map[string]any{"ghost_field": "x"})
		require.True(t, res.Failed())
		assert.ErrorIs(t, res.Err, ErrNoColumns)
	})

	t.Run("IntrospectionFailureFailsLoudly", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		require.NoError(t, svc.DB().Close())

		res := svc.Insert(context.Background(), "users", map[string]any{"name": "Alice"})
		require.True(t, res.Failed())
		assert.ErrorContains(t, res.Err, "failed to introspect schema")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("PlaceholderNamespace", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")

		res := svc.Update(context.Background(), "users",
			map[string]any{"name": "Bob"}, "id = :id", map[string]any{"id": 1})
		require.False(t, res.Failed())
		assert.Equal(t, "UPDATE users SET name = :update_name WHERE id = :id", res.SQL)
		assert.Equal(t, map[string]any{"update_name": "Bob", "id": 1}, res.Bindings)
		assert.Equal(t, int64(1), res.RowsAffected)
	})

	t.Run("NoCollisionWithCallerBindings", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")

		// The where clause binds the same base name as the updated column.
		res := svc.Update(context.Background(), "users",
			map[string]any{"name": "Bob"}, "name = :name", map[string]any{"name": "Alice"})
		require.False(t, res.Failed())
		assert.Equal(t, int64(1), res.RowsAffected)

		rows := svc.Select(context.Background(), "users", "", nil, "name")
		require.False(t, rows.Failed())
		require.Len(t, rows.Rows, 1)
		assert.Equal(t, "Bob", rows.Rows[0]["name"])
	})

	t.Run("FiltersUnknownFields", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")

		res := svc.Update(context.Background(), "users",
			map[string]any{"name": "Bob", "ghost_field": "x"},
			"id = :id", map[string]any{"id": 1})
		require.False(t, res.Failed())
		assert.Equal(t, "UPDATE users SET name = :update_name WHERE id = :id", res.SQL)
	})

	t.Run("EmptyWhereRejected", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Update(context.Background(), "users", map[string]any{"name": "Bob"}, "", nil)
		require.True(t, res.Failed())
		assert.ErrorIs(t, res.Err, ErrEmptyWhere)
	})

	t.Run("AllRowsOverride", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")
		seedUser(t, svc, "Bob")

		res := svc.Update(context.Background(), "users", map[string]any{"name": "Eve"}, AllRows, nil)
		require.False(t, res.Failed())
		assert.Equal(t, int64(2), res.RowsAffected)
	})

	t.Run("ZeroAffectedIsNotFailure", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Update(context.Background(), "users",
			map[string]any{"name": "Bob"}, "id = :id", map[string]any{"id": 999})
		require.False(t, res.Failed())
		assert.Equal(t, int64(0), res.RowsAffected)
	})
}

func TestDelete(t *testing.T) {
	t.Run("AffectedCount", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")
		seedUser(t, svc, "Bob")

		res := svc.Delete(context.Background(), "users", "name = :name", map[string]any{"name": "Alice"})
		require.False(t, res.Failed())
		assert.Equal(t, "DELETE FROM users WHERE name = :name", res.SQL)
		assert.Equal(t, int64(1), res.RowsAffected)
	})

	t.Run("EmptyWhereRejected", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Delete(context.Background(), "users", "", nil)
		require.True(t, res.Failed())
		assert.ErrorIs(t, res.Err, ErrEmptyWhere)
	})

	t.Run("AllRowsOverride", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")
		seedUser(t, svc, "Bob")

		res := svc.Delete(context.Background(), "users", AllRows, nil)
		require.False(t, res.Failed())
		assert.Equal(t, int64(2), res.RowsAffected)
	})
}

func TestSelect(t *testing.T) {
	t.Run("AllColumnsByDefault", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")

		res := svc.Select(context.Background(), "users", "", nil)
		require.False(t, res.Failed())
		assert.Equal(t, "SELECT * FROM users", res.SQL)
		assert.Equal(t, []string{"id", "name", "email"}, res.Columns)
		require.Len(t, res.Rows, 1)
	})

	t.Run("ExplicitFieldsAndWhere", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)
		seedUser(t, svc, "Alice")
		seedUser(t, svc, "Bob")

		res := svc.Select(context.Background(), "users", "name = :name",
			map[string]any{"name": "Bob"}, "id", "name")
		require.False(t, res.Failed())
		assert.Equal(t, "SELECT id, name FROM users WHERE name = :name", res.SQL)
		require.Len(t, res.Rows, 1)
		assert.Equal(t, "Bob", res.Rows[0]["name"])
	})

	t.Run("EmptyResultSet", func(t *testing.T) {
		svc := newTestService(t)
		createUsersTable(t, svc)

		res := svc.Select(context.Background(), "users", "", nil)
		require.False(t, res.Failed())
		assert.Empty(t, res.Rows)
		assert.NotNil(t, res.Rows)
	})
}

// seedUser inserts one row directly, bypassing the builders under test.
func seedUser(t *testing.T, svc *Service, name string) {
	t.Helper()
	_, err := svc.DB().Exec("INSERT INTO users (name) VALUES (?)", name)
	require.NoError(t, err)
}
