// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/driizzyy/deskcalc/internal/memory"
	"github.com/driizzyy/deskcalc/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for calculation history and memory slots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			expression TEXT NOT NULL,
			result TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS memory_slots (
			slot TEXT PRIMARY KEY,
			value REAL NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertEntry stores one committed calculation and returns its id.
func (s *Store) InsertEntry(ctx context.Context, entry model.HistoryEntry) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history (created_at, mode, expression, result) VALUES (?, ?, ?, ?)`,
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.Mode.String(),
		entry.Expression,
		entry.Result,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEntries returns stored calculations, newest first, optionally
// filtered by mode. A non-positive limit returns everything.
func (s *Store) ListEntries(ctx context.Context, limit int, mode string) ([]model.HistoryEntry, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, mode)
	}
	query := fmt.Sprintf(`SELECT id, created_at, mode, expression, result
		FROM history
		WHERE %s
		ORDER BY created_at DESC, id DESC`, strings.Join(clauses, " AND "))
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var createdAt, modeName string
		if err := rows.Scan(&entry.ID, &createdAt, &modeName, &entry.Expression, &entry.Result); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = parsed
		parsedMode, err := model.ParseMode(modeName)
		if err != nil {
			return nil, err
		}
		entry.Mode = parsedMode
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ClearHistory removes all stored calculations.
func (s *Store) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	return err
}

// SaveSlots replaces the persisted memory slots with the given snapshot.
func (s *Store) SaveSlots(ctx context.Context, slots []memory.Slot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM memory_slots`); err != nil {
		return err
	}
	if len(slots) > 0 {
		stmt, perr := tx.PrepareContext(ctx, `INSERT INTO memory_slots (slot, value) VALUES (?, ?)`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, slot := range slots {
			if _, err = stmt.ExecContext(ctx, slot.Name, slot.Value); err != nil {
				return err
			}
		}
	}
	err = tx.Commit()
	return err
}

// LoadSlots reads the persisted memory slots.
func (s *Store) LoadSlots(ctx context.Context) ([]memory.Slot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slot, value FROM memory_slots ORDER BY slot ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var slots []memory.Slot
	for rows.Next() {
		var slot memory.Slot
		if err := rows.Scan(&slot.Name, &slot.Value); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

// ClearSlots removes all persisted memory slots.
func (s *Store) ClearSlots(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM memory_slots`)
	return err
}
