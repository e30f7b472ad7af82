package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quangdm/cloudscore/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS drafts (
	slot TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	saved_at INTEGER NOT NULL
)`

// SQLiteStore keeps the draft in a local file, surviving restarts without
// any external service.
type SQLiteStore struct {
	db   *sqlx.DB
	slot string
	now  func() time.Time
}

func NewSQLiteStore(dsn, slot string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init drafts table: %w", err)
	}
	if slot == "" {
		slot = DefaultSlot
	}
	return &SQLiteStore{db: db, slot: slot, now: time.Now}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, d *models.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (slot, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
		payload = excluded.payload,
		saved_at = excluded.saved_at
	`, s.slot, string(payload), d.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.Draft, error) {
	var payload string
	err := s.db.GetContext(ctx, &payload, `SELECT payload FROM drafts WHERE slot = ?`, s.slot)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var d models.Draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		_ = s.Clear(ctx)
		return nil, nil
	}
	if d.Age(s.now()) > MaxAge {
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &d, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE slot = ?`, s.slot); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
