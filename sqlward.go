// Package sqlward is a thin convenience layer over database/sql. It builds
// common SQL statements from structured inputs, executes them with named
// bindings, classifies results by statement kind, and reports failures
// through an optional callback.
//
// Unknown field names are filtered out against the live table schema before
// INSERT and UPDATE, so extraneous keys in a field map are never sent to the
// database. Database errors never propagate as Go errors past the Result
// boundary; callers check Result.Failed().
//
// A Service retains the most recent call's Result, so one instance is not
// safe for concurrent use without external serialization.
package sqlward

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sqlward/sqlward/internal/dialect"
	"github.com/sqlward/sqlward/internal/log"
)

// Service builds and executes SQL statements against a single database.
type Service struct {
	db            *sqlx.DB
	dialect       dialect.Dialect
	prefix        string
	reporter      ReportFunc
	reporterSet   bool
	captureCaller bool
	logger        log.Logger
	last          Result
}

// Option configures a Service.
type Option func(*Service)

// WithPrefix sets a prefix that is combined with every table name before use.
func WithPrefix(prefix string) Option {
	return func(s *Service) {
		s.prefix = prefix
	}
}

// WithDialect overrides the dialect detected from the driver name.
func WithDialect(d dialect.Dialect) Option {
	return func(s *Service) {
		s.dialect = d
	}
}

// WithReporter registers the callback that receives a formatted diagnostic
// report on every failed execution. The callback must not be nil; a nil
// value is rejected when the Service is constructed.
func WithReporter(fn ReportFunc) Option {
	return func(s *Service) {
		s.reporter = fn
		s.reporterSet = true
	}
}

// WithCallerLocation enables best-effort capture of the first caller frame
// outside this package into failure reports.
func WithCallerLocation(enabled bool) Option {
	return func(s *Service) {
		s.captureCaller = enabled
	}
}

// WithLogger sets the logger used to log executed statements and failures.
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Open opens a database through the named driver and wraps it in a Service.
//
// The connection is verified with a ping. On ping failure Open returns the
// error together with a still-usable Service; callers that ignore the error
// get a handle whose every operation fails against the broken connection.
func Open(driverName string, dsn string, opts ...Option) (*Service, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	svc, err := New(db, driverName, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return svc, fmt.Errorf("failed to ping connection: %w", err)
	}
	return svc, nil
}

// New wraps an existing database handle in a Service. The driver name is
// used to detect the active dialect unless WithDialect overrides it.
func New(db *sql.DB, driverName string, opts ...Option) (*Service, error) {
	svc := &Service{
		db:      sqlx.NewDb(db, driverName),
		dialect: dialect.Unknown,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.reporterSet && svc.reporter == nil {
		return nil, errors.New("reporter must not be nil")
	}

	if svc.dialect == dialect.Unknown {
		d, err := dialect.FromDriver(driverName)
		if err != nil {
			return nil, err
		}
		svc.dialect = d
	}
	if !dialect.All.Contains(svc.dialect) {
		return nil, fmt.Errorf("unsupported dialect %q", svc.dialect.Value)
	}

	return svc, nil
}

// DB exposes the underlying database handle.
func (s *Service) DB() *sqlx.DB {
	return s.db
}

// Dialect returns the active dialect.
func (s *Service) Dialect() dialect.Dialect {
	return s.dialect
}

// LastResult returns the Result of the most recent execution.
func (s *Service) LastResult() Result {
	return s.last
}

// Close closes the underlying database handle.
func (s *Service) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// prefixed combines the service-wide table prefix with a table name.
func (s *Service) prefixed(table string) string {
	return s.prefix + table
}
