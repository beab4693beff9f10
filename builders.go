package sqlward

import (
	"context"
	"fmt"
	"strings"
)

// Select builds and executes a SELECT against the prefixed table. The where
// clause is a raw SQL fragment using named placeholders; an empty clause
// selects every row. When no fields are given, all columns are selected.
func (s *Service) Select(ctx context.Context, table string, where string, bindings map[string]any, fields ...string) Result {
	columns := "*"
	if len(fields) > 0 {
		columns = strings.Join(fields, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columns)
	sb.WriteString(" FROM ")
	sb.WriteString(s.prefixed(table))
	if strings.TrimSpace(where) != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	return s.execute(ctx, KindSelect, sb.String(), bindings)
}

// Insert builds and executes an INSERT from a field map. Field names are
// filtered against the live table schema first, so keys that are not real
// columns are dropped and never sent to the database. The Result carries the
// last inserted row identifier.
func (s *Service) Insert(ctx context.Context, table string, fields map[string]any) Result {
	filtered, err := s.FilterFields(ctx, table, fields)
	if err != nil {
		return s.fail(Result{Kind: KindInsert, Bindings: fields},
			fmt.Errorf("failed to introspect schema of %s: %w", s.prefixed(table), err))
	}
	if len(filtered) == 0 {
		return s.fail(Result{Kind: KindInsert, Bindings: fields},
			fmt.Errorf("%w in %s", ErrNoColumns, s.prefixed(table)))
	}

	placeholders := make([]string, len(filtered))
	bindings := make(map[string]any, len(filtered))
	for i, column := range filtered {
		placeholders[i] = ":" + column
		bindings[column] = fields[column]
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.prefixed(table))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(filtered, ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(placeholders, ", "))
	sb.WriteString(")")

	return s.execute(ctx, KindInsert, sb.String(), bindings)
}

// Update builds and executes an UPDATE from a field map. Field names are
// filtered against the live table schema like Insert. Per-field placeholders
// are prefixed with "update_" so they cannot collide with placeholders
// already used in the where clause. The where clause must be non-empty; pass
// AllRows to update every row deliberately. The Result carries the affected
// row count.
func (s *Service) Update(ctx context.Context, table string, fields map[string]any, where string, bindings map[string]any) Result {
	if strings.TrimSpace(where) == "" {
		return s.fail(Result{Kind: KindUpdate, Bindings: bindings},
			fmt.Errorf("%w: refusing to update every row of %s", ErrEmptyWhere, s.prefixed(table)))
	}

	filtered, err := s.FilterFields(ctx, table, fields)
	if err != nil {
		return s.fail(Result{Kind: KindUpdate, Bindings: bindings},
			fmt.Errorf("failed to introspect schema of %s: %w", s.prefixed(table), err))
	}
	if len(filtered) == 0 {
		return s.fail(Result{Kind: KindUpdate, Bindings: bindings},
			fmt.Errorf("%w in %s", ErrNoColumns, s.prefixed(table)))
	}

	merged := make(map[string]any, len(bindings)+len(filtered))
	for key, value := range bindings {
		merged[key] = value
	}

	assignments := make([]string, len(filtered))
	for i, column := range filtered {
		assignments[i] = fmt.Sprintf("%s = :update_%s", column, column)
		merged["update_"+column] = fields[column]
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(s.prefixed(table))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(assignments, ", "))
	sb.WriteString(" WHERE ")
	sb.WriteString(where)

	return s.execute(ctx, KindUpdate, sb.String(), merged)
}

// Delete builds and executes a DELETE. The where clause must be non-empty;
// pass AllRows to delete every row deliberately. The Result carries the
// affected row count.
func (s *Service) Delete(ctx context.Context, table string, where string, bindings map[string]any) Result {
	if strings.TrimSpace(where) == "" {
		return s.fail(Result{Kind: KindDelete, Bindings: bindings},
			fmt.Errorf("%w: refusing to delete every row of %s", ErrEmptyWhere, s.prefixed(table)))
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(s.prefixed(table))
	sb.WriteString(" WHERE ")
	sb.WriteString(where)

	return s.execute(ctx, KindDelete, sb.String(), bindings)
}
