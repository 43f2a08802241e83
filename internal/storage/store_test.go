package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	user := health.User{ID: "doctor-1", Name: "Dr. Sarah Smith", Role: health.RoleDoctor}
	session := NewSession(user)

	assert.Equal(t, user, session.User)
	assert.False(t, session.StartedAt.IsZero())
	assert.True(t, session.StartedAt.Before(time.Now().Add(time.Second)))
	assert.Equal(t, time.UTC, session.StartedAt.Location())
}

func TestErrNotFound(t *testing.T) {
	err := ErrNotFound{Resource: "session", ID: SessionKey}

	assert.Equal(t, "session not found: session.user", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestIsNotFoundWrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", ErrNotFound{Resource: "readings", ID: "P2001"})

	assert.True(t, IsNotFound(err))
}

func TestIsNotFoundFalse(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(assert.AnError))
}
