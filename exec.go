package sqlward

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sqlward/sqlward/internal/log"
)

var verbPattern = regexp.MustCompile(`^(?i)(select|insert|update|delete|describe|pragma)\b`)

// classifyKind derives the statement kind from the leading SQL keyword.
func classifyKind(query string) Kind {
	match := verbPattern.FindStringSubmatch(strings.TrimSpace(query))
	if match == nil {
		return KindUnknown
	}

	switch strings.ToLower(match[1]) {
	case "select":
		return KindSelect
	case "insert":
		return KindInsert
	case "update":
		return KindUpdate
	case "delete":
		return KindDelete
	case "describe":
		return KindDescribe
	case "pragma":
		return KindPragma
	}
	return KindUnknown
}

// Run executes a free-form statement with named bindings. The statement kind
// is derived from the leading verb; statements outside the supported keyword
// list fail with ErrUnsupportedStatement.
func (s *Service) Run(ctx context.Context, query string, bindings map[string]any) Result {
	query = strings.TrimSpace(query)

	kind := classifyKind(query)
	if kind == KindUnknown {
		return s.fail(Result{Kind: kind, SQL: query, Bindings: bindings},
			fmt.Errorf("%w: %q", ErrUnsupportedStatement, firstWord(query)))
	}
	return s.execute(ctx, kind, query, bindings)
}

// execute runs one statement and shapes the Result by kind. All database
// errors are converted to a failed Result here; none escape as Go errors.
func (s *Service) execute(ctx context.Context, kind Kind, query string, bindings map[string]any) Result {
	query = strings.TrimSpace(query)
	if bindings == nil {
		bindings = map[string]any{}
	}
	res := Result{Kind: kind, SQL: query, Bindings: bindings}

	bound, args, err := sqlx.Named(query, bindings)
	if err != nil {
		return s.fail(res, fmt.Errorf("failed to bind parameters: %w", err))
	}
	bound = s.db.Rebind(bound)

	switch kind {
	case KindSelect, KindDescribe, KindPragma:
		rows, err := s.db.QueryxContext(ctx, bound, args...)
		if err != nil {
			return s.fail(res, fmt.Errorf("failed to execute statement: %w", err))
		}
		defer rows.Close()

		res.Columns, err = rows.Columns()
		if err != nil {
			return s.fail(res, fmt.Errorf("failed to get columns: %w", err))
		}

		res.Rows = []map[string]any{}
		for rows.Next() {
			row := map[string]any{}
			if err := rows.MapScan(row); err != nil {
				return s.fail(res, fmt.Errorf("failed to scan row: %w", err))
			}
			res.Rows = append(res.Rows, row)
		}
		if err := rows.Err(); err != nil {
			return s.fail(res, fmt.Errorf("failed to read rows: %w", err))
		}

	case KindInsert:
		result, err := s.db.ExecContext(ctx, bound, args...)
		if err != nil {
			return s.fail(res, fmt.Errorf("failed to execute statement: %w", err))
		}
		res.LastInsertID, err = result.LastInsertId()
		if err != nil {
			return s.fail(res, fmt.Errorf("failed to get last insert ID: %w", err))
		}

	case KindUpdate, KindDelete:
		result, err := s.db.ExecContext(ctx, bound, args...)
		if err != nil {
			return s.fail(res, fmt.Errorf("failed to execute statement: %w", err))
		}
		res.RowsAffected, err = result.RowsAffected()
		if err != nil {
			return s.fail(res, fmt.Errorf("failed to get rows affected: %w", err))
		}

	default:
		return s.fail(res, fmt.Errorf("%w: %q", ErrUnsupportedStatement, kind.Value))
	}

	if s.logger.IsInitialized() {
		s.logger.Debug("statement executed", log.KV{
			"kind": kind.Value,
			"sql":  query,
		})
	}

	s.last = res
	return res
}

// fail records a failed Result, logs it, reports it, and returns it.
func (s *Service) fail(res Result, err error) Result {
	res.Err = err
	s.last = res

	if s.logger.IsInitialized() {
		s.logger.Error("statement failed", log.KV{
			"kind":  res.Kind.Value,
			"sql":   res.SQL,
			"error": err.Error(),
		})
	}

	s.report(res)
	return res
}

// firstWord returns the leading whitespace-delimited token of a statement.
func firstWord(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
