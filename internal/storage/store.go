// Package storage provides storage abstractions for the dashboard: the
// signed-in session, saved reading snapshots and key/value configuration.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jwulff/glucodash/internal/health"
)

// SessionKey is the config key the signed-in user is kept under.
const SessionKey = "session.user"

// Store is the interface for persistent storage.
type Store interface {
	// Session
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context) (*Session, error)
	ClearSession(ctx context.Context) error

	// Reading snapshots
	StoreReadings(ctx context.Context, data health.HealthData) error
	QueryReadings(ctx context.Context, patientID string, since, until time.Time) (*health.HealthData, error)
	DeleteReadings(ctx context.Context, patientID string, before time.Time) error
	SnapshotPatients(ctx context.Context) ([]string, error)

	// Configuration
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
	DeleteConfig(ctx context.Context, key string) error

	// Lifecycle
	Close() error
}

// Session is the signed-in dashboard user.
type Session struct {
	User      health.User `json:"user"`
	StartedAt time.Time   `json:"startedAt"`
}

// NewSession creates a session record for user starting now.
func NewSession(user health.User) *Session {
	return &Session{
		User:      user,
		StartedAt: time.Now().UTC(),
	}
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is, or wraps, a not found error.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}
