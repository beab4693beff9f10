package sqlward

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// Columns returns the column names of the prefixed table in schema order,
// using the active dialect's introspection statement. The schema is queried
// live on every call; nothing is cached.
func (s *Service) Columns(ctx context.Context, table string) ([]string, error) {
	target := s.prefixed(table)
	query, bindings := s.dialect.ColumnsStatement(target)

	res := s.execute(ctx, classifyKind(query), query, bindings)
	if res.Failed() {
		return nil, fmt.Errorf("failed to list columns of %s: %w", target, res.Err)
	}

	key := s.dialect.ColumnNameKey()
	columns := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		switch name := row[key].(type) {
		case string:
			columns = append(columns, name)
		case []byte:
			columns = append(columns, string(name))
		}
	}
	return columns, nil
}

// FilterFields intersects the keys of a field map with the live columns of
// the prefixed table. The returned names follow schema order, not field map
// order; keys that are not real columns are dropped.
func (s *Service) FilterFields(ctx context.Context, table string, fields map[string]any) ([]string, error) {
	columns, err := s.Columns(ctx, table)
	if err != nil {
		return nil, err
	}

	return lo.Filter(columns, func(column string, _ int) bool {
		_, ok := fields[column]
		return ok
	}), nil
}
