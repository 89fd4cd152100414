/*
Package sqlite provides a SQLite-backed generic.CustomHolidayStore.

PURPOSE:
  Persists user-defined holidays (company closures, founding days) so the
  HTTP service and the CLI see the same entries across restarts. Statutory
  holidays are never stored; rule providers compute them on demand.

KEY TABLES:
  custom_holidays: one row per entry, unique on (country, date, name)

UPSERT:
  Saving an entry whose (country, date, name) already exists replaces that
  row, including its ID. Saving an existing ID under a new key moves it.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. ":memory:" databases are pinned to a
  single connection so every query sees the same database.

WAL MODE:
  File databases are opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

USAGE:
  store, err := sqlite.New("./data/holidays.db", logger)
  if err != nil {
      return err
  }
  defer store.Close()

  err = generic.LoadCustomHolidays(ctx, store, set, 2025)

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - generic/store.go: Interface definition
  - generic/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/warp/holiday-engine/generic"
)

const dateLayout = "2006-01-02"

// Store implements generic.CustomHolidayStore using SQLite.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *zap.Logger
}

var _ generic.CustomHolidayStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database. A nil logger disables logging.
func New(dbPath string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db, logger: logger.Named("sqlite")}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	store.logger.Debug("opened database", zap.String("path", dbPath))
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS custom_holidays (
		id TEXT PRIMARY KEY,
		country TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		recurring BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_custom_holidays_key
		ON custom_holidays(country, date, name);

	CREATE INDEX IF NOT EXISTS idx_custom_holidays_country
		ON custom_holidays(country);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CUSTOM HOLIDAY STORE
// =============================================================================

// SaveCustomHoliday inserts or replaces an entry.
func (s *Store) SaveCustomHoliday(ctx context.Context, h generic.CustomHoliday) error {
	if h.ID == "" {
		return errors.New("custom holiday ID must not be empty")
	}
	if h.Date.IsZero() {
		return errors.New("custom holiday date must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM custom_holidays WHERE id = ?", h.ID); err != nil {
		return fmt.Errorf("failed to save custom holiday: %w", err)
	}

	query := `
		INSERT INTO custom_holidays (id, country, date, name, recurring, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(country, date, name) DO UPDATE SET
			id = excluded.id,
			recurring = excluded.recurring
	`
	_, err = tx.ExecContext(ctx, query,
		h.ID,
		strings.ToUpper(h.Country),
		h.Date.String(),
		h.Name,
		h.Recurring,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("custom holiday %s conflicts with an existing entry: %w", h.ID, err)
		}
		return fmt.Errorf("failed to save custom holiday: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit custom holiday: %w", err)
	}

	s.logger.Debug("saved custom holiday",
		zap.String("id", h.ID),
		zap.String("country", h.Country),
		zap.Stringer("date", h.Date))
	return nil
}

// DeleteCustomHoliday deletes an entry by ID.
func (s *Store) DeleteCustomHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM custom_holidays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete custom holiday: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete custom holiday: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("custom holiday %s: %w", id, generic.ErrNotFound)
	}
	return nil
}

// ListCustomHolidays returns the entries for country and the global ones
// that occur in year. Recurring entries come back rebased onto year.
func (s *Store) ListCustomHolidays(ctx context.Context, country string, year int) ([]generic.CustomHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, country, date, name, recurring
		FROM custom_holidays
		WHERE (country = ? OR country = '')
		  AND (recurring = TRUE OR strftime('%Y', date) = ?)
		ORDER BY strftime('%m-%d', date) ASC, id ASC
	`

	all, err := s.queryCustomHolidays(ctx, query, strings.ToUpper(country), fmt.Sprintf("%04d", year))
	if err != nil {
		return nil, err
	}

	result := all[:0]
	for _, h := range all {
		if d, ok := h.In(year); ok {
			h.Date = d
			result = append(result, h)
		}
	}
	return result, nil
}

// AllCustomHolidays returns every entry for country plus the global ones,
// as stored.
func (s *Store) AllCustomHolidays(ctx context.Context, country string) ([]generic.CustomHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, country, date, name, recurring
		FROM custom_holidays
		WHERE country = ? OR country = ''
		ORDER BY date ASC, id ASC
	`
	return s.queryCustomHolidays(ctx, query, strings.ToUpper(country))
}

// Reset clears all data (for testing).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM custom_holidays")
	return err
}

func (s *Store) queryCustomHolidays(ctx context.Context, query string, args ...any) ([]generic.CustomHoliday, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom holidays: %w", err)
	}
	defer rows.Close()

	var holidays []generic.CustomHoliday
	for rows.Next() {
		var h generic.CustomHoliday
		var dateStr string
		if err := rows.Scan(&h.ID, &h.Country, &dateStr, &h.Name, &h.Recurring); err != nil {
			return nil, err
		}
		t, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			s.logger.Warn("skipping custom holiday with invalid date",
				zap.String("id", h.ID), zap.String("date", dateStr))
			continue
		}
		h.Date = generic.DateOf(t)
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Helper functions

func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
