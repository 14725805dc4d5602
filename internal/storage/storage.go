package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/regimen/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the database named by the user's config and makes sure
// the schema exists.
func NewStorage() (*Storage, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return Open(cfg.DB.DSN())
}

// Open picks the libsql driver for remote URLs and the pure Go SQLite driver
// for local files.
func Open(dsn string) (*Storage, error) {
	driver := "sqlite"
	if config.IsRemote(dsn) {
		driver = "libsql"
	} else if err := ensureDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db: %w", err)
	}

	if driver == "sqlite" {
		// One connection keeps the pragma and serializes writers.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
			db.Close()
			return nil, fmt.Errorf("Failed to enable foreign keys: %w", err)
		}
	}

	if err := InitializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS cycles (
            id TEXT PRIMARY KEY,
            start_date TEXT NOT NULL,
            is_active INTEGER NOT NULL DEFAULT 0
        );

        CREATE TABLE IF NOT EXISTS day_logs (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL UNIQUE,
            day_type TEXT NOT NULL,
            cycle_week INTEGER,
            water_intake REAL NOT NULL DEFAULT 0,
            sleep_hours REAL NOT NULL DEFAULT 0,
            weight REAL
        );

        CREATE TABLE IF NOT EXISTS meal_logs (
            id TEXT PRIMARY KEY,
            day_log_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            meal_type TEXT NOT NULL,
            scheduled_time TEXT NOT NULL,
            is_completed INTEGER NOT NULL DEFAULT 0,
            completed_at TEXT,
            FOREIGN KEY (day_log_id) REFERENCES day_logs(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS supplement_logs (
            id TEXT PRIMARY KEY,
            day_log_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            supplement_type TEXT NOT NULL,
            timing_slot TEXT NOT NULL,
            dosage TEXT NOT NULL,
            is_completed INTEGER NOT NULL DEFAULT 0,
            completed_at TEXT,
            FOREIGN KEY (day_log_id) REFERENCES day_logs(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS advanced_supplement_logs (
            id TEXT PRIMARY KEY,
            day_log_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            supplement_type TEXT NOT NULL,
            dosage TEXT NOT NULL,
            is_completed INTEGER NOT NULL DEFAULT 0,
            completed_at TEXT,
            FOREIGN KEY (day_log_id) REFERENCES day_logs(id) ON DELETE CASCADE
        );

        CREATE INDEX IF NOT EXISTS idx_meal_logs_day ON meal_logs(day_log_id);
        CREATE INDEX IF NOT EXISTS idx_supplement_logs_day ON supplement_logs(day_log_id);
        CREATE INDEX IF NOT EXISTS idx_advanced_supplement_logs_day ON advanced_supplement_logs(day_log_id);
    `)
	return err
}

// DeleteAll wipes every day log and cycle.
func (s *Storage) DeleteAll(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"meal_logs", "supplement_logs", "advanced_supplement_logs", "day_logs", "cycles"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("Failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}
