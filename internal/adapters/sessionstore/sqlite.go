package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*SQLiteStore)(nil)
	_ ports.HealthChecker = (*SQLiteStore)(nil)
)

const migration = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
}

// OpenSQLite opens the SQLite database at dsn. Use ":memory:" for a private
// in-memory database. The pool is limited to one connection so an in-memory
// database is shared by every query and writers never contend.
func OpenSQLite(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	return &DB{db}, nil
}

// RunMigrations creates the sessions table if it does not exist.
func (db *DB) RunMigrations(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, migration); err != nil {
		return fmt.Errorf("running session migrations: %w", err)
	}
	return nil
}

// SQLiteStore keeps encoded sessions in the sessions table. Expiry is stored
// as Unix milliseconds.
type SQLiteStore struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteStore creates a SQLiteStore on a migrated database.
func NewSQLiteStore(db *DB, ttl time.Duration) *SQLiteStore {
	return &SQLiteStore{db: db, ttl: ttl, now: time.Now}
}

// Load returns the stored state for id, or empty state when id is unknown
// or expired.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*session.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE id = ? AND expires_at > ?`,
		id, s.now().UnixMilli(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return session.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return Decode([]byte(data))
}

// Save upserts state under id and resets its expiry.
func (s *SQLiteStore) Save(ctx context.Context, id string, state *session.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (id, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at
	`
	if _, err := s.db.ExecContext(ctx, query, id, string(data), s.now().Add(s.ttl).UnixMilli()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes every expired row.
func (s *SQLiteStore) DeleteExpired(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired sessions: %w", err)
	}
	return int(n), nil
}

// Name identifies the store in readiness reports.
func (s *SQLiteStore) Name() string { return "session-store" }

// HealthCheck pings the database.
func (s *SQLiteStore) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}
