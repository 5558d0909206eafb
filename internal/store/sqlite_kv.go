package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "prefs.sqlite"

// SQLiteKV stores preferences in a single-table SQLite database.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) <dir>/prefs.sqlite.
func OpenSQLite(ctx context.Context, dir string) (*SQLiteKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFileName))
	if err != nil {
		return nil, err
	}
	// WAL: the TUI and serve may both have the file open.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteKV{db: db}, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS prefs (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`)
	return err
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM prefs WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prefs(k, v) VALUES(?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value)
	return err
}

func (s *SQLiteKV) Close() error { return s.db.Close() }
