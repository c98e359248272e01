package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"marine-guardian/internal/logger"
	"marine-guardian/internal/timing"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const component = "RecordStore"

// Store persists sightings in the species table of a single SQLite file.
// It holds no open connection: every operation acquires one, runs its
// statement and releases it before returning.
type Store struct {
	path    string
	dsn     string
	logger  logger.Logger
	now     func() time.Time
	timings *timing.Tracker
}

// Option customises a Store
type Option func(*Store)

// WithLogger routes store diagnostics to log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithClock replaces time.Now as the source of DateRecorded
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTracker records the duration of every operation under its op name
func WithTracker(tt *timing.Tracker) Option {
	return func(s *Store) {
		s.timings = tt
	}
}

// Open prepares a store backed by dbPath and runs Initialize.
// The parent directory and the file are created when missing.
func Open(ctx context.Context, dbPath string, opts ...Option) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, &StorageError{Op: opInitialize, Err: fmt.Errorf("create db directory: %w", err)}
	}

	// busy_timeout waits out a lock held by another process instead of
	// failing immediately; WAL keeps readers unblocked during a write.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		fileURIPath(dbPath))

	s := &Store{
		path:   dbPath,
		dsn:    dsn,
		logger: logger.NopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// fileURIPath escapes the characters SQLite's URI parser treats specially
// (?, # and %) so the opened file is the one MkdirAll prepared.
func fileURIPath(dbPath string) string {
	return (&url.URL{Path: filepath.ToSlash(filepath.Clean(dbPath))}).EscapedPath()
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Initialize ensures the species table and its index exist. Safe to call on
// every startup.
func (s *Store) Initialize(ctx context.Context) error {
	return s.withConn(ctx, opInitialize, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, schemaSQL)
		return err
	})
}

// withConn opens a connection for the duration of fn and always releases it.
// Any failure is logged once and returned as a *StorageError.
func (s *Store) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	stop := s.timings.Start(op)
	err := s.runWithConn(ctx, fn)
	stop()
	if err == nil {
		return nil
	}

	// Not-found is an answer, not a storage failure.
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	s.logger.Error(component, err, map[string]interface{}{
		"op":   op,
		"path": s.path,
	})
	return &StorageError{Op: op, Err: err}
}

func (s *Store) runWithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
