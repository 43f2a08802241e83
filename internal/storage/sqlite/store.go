// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore creates a file-based SQLite store.
func NewFileStore(path string) (*Store, error) {
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Session methods

func (s *Store) SaveSession(ctx context.Context, session *storage.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.SetConfig(ctx, storage.SessionKey, string(data))
}

func (s *Store) GetSession(ctx context.Context) (*storage.Session, error) {
	data, err := s.GetConfig(ctx, storage.SessionKey)
	if storage.IsNotFound(err) {
		return nil, storage.ErrNotFound{Resource: "session", ID: storage.SessionKey}
	}
	if err != nil {
		return nil, err
	}

	var session storage.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	return s.DeleteConfig(ctx, storage.SessionKey)
}

// Reading methods

func (s *Store) StoreReadings(ctx context.Context, data health.HealthData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO readings (patient_id, kind, date, slot, value, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	insert := func(kind string, date time.Time, slot string, value float64) error {
		_, err := stmt.ExecContext(ctx, data.PatientID, kind, date.Format(health.DateLayout), slot, value, now)
		return err
	}

	for _, r := range data.Glucose {
		if err := insert(kindGlucose, r.Date, r.Time, r.Measurement()); err != nil {
			return err
		}
	}
	for _, r := range data.A1C {
		if err := insert(kindA1C, r.Date, "", r.Value); err != nil {
			return err
		}
	}
	for _, r := range data.Weight {
		if err := insert(kindWeight, r.Date, "", r.Value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// QueryReadings returns the saved readings for a patient dated within
// [since, until], each series oldest first.
func (s *Store) QueryReadings(ctx context.Context, patientID string, since, until time.Time) (*health.HealthData, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, date, slot, value FROM readings
		WHERE patient_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, slot ASC
	`, patientID, since.Format(health.DateLayout), until.Format(health.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := &health.HealthData{PatientID: patientID}
	found := false
	for rows.Next() {
		var kind, dateStr, slot string
		var value float64
		if err := rows.Scan(&kind, &dateStr, &slot, &value); err != nil {
			return nil, err
		}
		date, err := time.Parse(health.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reading date %q: %w", dateStr, err)
		}

		found = true
		switch kind {
		case kindGlucose:
			data.Glucose = append(data.Glucose, health.GlucoseReading{Date: date, Time: slot, Value: health.RoundInt(value)})
		case kindA1C:
			data.A1C = append(data.A1C, health.A1CReading{Date: date, Value: value})
		case kindWeight:
			data.Weight = append(data.Weight, health.WeightReading{Date: date, Value: value})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, storage.ErrNotFound{Resource: "readings", ID: patientID}
	}
	return data, nil
}

func (s *Store) DeleteReadings(ctx context.Context, patientID string, before time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM readings WHERE patient_id = ? AND date < ?
	`, patientID, before.Format(health.DateLayout))
	return err
}

// SnapshotPatients lists the patients with saved readings.
func (s *Store) SnapshotPatients(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT patient_id FROM readings ORDER BY patient_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Config methods

func (s *Store) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound{Resource: "config", ID: key}
	}
	return value, err
}

func (s *Store) SetConfig(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO config (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now())
	return err
}

func (s *Store) DeleteConfig(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM config WHERE key = ?", key)
	return err
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
