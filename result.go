package sqlward

import (
	"errors"

	"github.com/orsinium-labs/enum"
)

// Kind represents the kind of a built statement. Builders tag it at build
// time; only Run derives it from the SQL text.
type Kind enum.Member[string]

var (
	KindUnknown  = Kind{Value: "unknown"}
	KindSelect   = Kind{Value: "select"}
	KindInsert   = Kind{Value: "insert"}
	KindUpdate   = Kind{Value: "update"}
	KindDelete   = Kind{Value: "delete"}
	KindDescribe = Kind{Value: "describe"}
	KindPragma   = Kind{Value: "pragma"}

	Kinds = enum.New(
		KindSelect, KindInsert, KindUpdate,
		KindDelete, KindDescribe, KindPragma,
	)
)

var (
	// ErrEmptyWhere is returned by Update and Delete when the where clause
	// is empty. Pass AllRows to target every row deliberately.
	ErrEmptyWhere = errors.New("empty where clause")

	// ErrUnsupportedStatement is returned by Run for statements whose
	// leading verb is not one of the supported keywords.
	ErrUnsupportedStatement = errors.New("unsupported statement type")

	// ErrNoColumns is returned by Insert and Update when none of the given
	// field names exist as columns of the target table.
	ErrNoColumns = errors.New("no matching columns")
)

// AllRows is an always-true where clause for callers that deliberately want
// an Update or Delete to target every row of a table.
const AllRows = "1 = 1"

// Result is the outcome of a single statement execution. Exactly one of the
// payload fields is meaningful, selected by Kind: Rows for row-returning
// statements, LastInsertID for inserts, RowsAffected for updates and
// deletes. A non-nil Err marks the whole execution as failed; a zero
// RowsAffected with a nil Err is a legitimate no-op, not a failure.
type Result struct {
	Kind         Kind
	Columns      []string
	Rows         []map[string]any
	RowsAffected int64
	LastInsertID int64
	SQL          string
	Bindings     map[string]any
	Err          error
}

// Failed reports whether the execution failed.
func (r Result) Failed() bool {
	return r.Err != nil
}
