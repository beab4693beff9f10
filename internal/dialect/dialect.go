// Package dialect identifies the active database backend and provides the
// dialect-specific schema introspection statements.
package dialect

import (
	"fmt"

	"github.com/orsinium-labs/enum"
)

// Dialect represents one of the supported database backends.
type Dialect enum.Member[string]

var (
	Unknown  = Dialect{Value: "unknown"}
	MySQL    = Dialect{Value: "mysql"}
	SQLite   = Dialect{Value: "sqlite"}
	Postgres = Dialect{Value: "postgres"}

	All = enum.New(MySQL, SQLite, Postgres)
)

// FromDriver maps a database/sql driver name to its dialect.
func FromDriver(driverName string) (Dialect, error) {
	switch driverName {
	case "sqlite3", "sqlite":
		return SQLite, nil
	case "mysql":
		return MySQL, nil
	case "postgres", "pgx", "pq":
		return Postgres, nil
	}
	return Unknown, fmt.Errorf("no dialect known for driver %q", driverName)
}

// ColumnsStatement returns the statement that lists the columns of table,
// with any named bindings it needs. The table name is interpolated directly
// for the dialects whose introspection statements cannot be parameterized.
func (d Dialect) ColumnsStatement(table string) (string, map[string]any) {
	switch d {
	case MySQL:
		return fmt.Sprintf("DESCRIBE %s", table), nil
	case SQLite:
		return fmt.Sprintf("PRAGMA table_info(%s)", table), nil
	case Postgres:
		query := "SELECT column_name FROM information_schema.columns " +
			"WHERE table_name = :table ORDER BY ordinal_position"
		return query, map[string]any{"table": table}
	}
	return "", nil
}

// TablesStatement returns the statement that lists the user tables of the
// connected database, with any named bindings it needs.
func (d Dialect) TablesStatement() (string, map[string]any) {
	switch d {
	case MySQL:
		query := "SELECT table_name FROM information_schema.tables " +
			"WHERE table_schema = DATABASE() ORDER BY table_name"
		return query, nil
	case SQLite:
		query := "SELECT name FROM sqlite_master WHERE type = :type ORDER BY name"
		return query, map[string]any{"type": "table"}
	case Postgres:
		query := "SELECT table_name FROM information_schema.tables " +
			"WHERE table_schema = :schema ORDER BY table_name"
		return query, map[string]any{"schema": "public"}
	}
	return "", nil
}

// ColumnNameKey returns the column of the introspection result set that
// holds the column name for this dialect.
func (d Dialect) ColumnNameKey() string {
	switch d {
	case MySQL:
		return "Field"
	case SQLite:
		return "name"
	case Postgres:
		return "column_name"
	}
	return ""
}
