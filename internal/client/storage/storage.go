package storage

import (
	"context"

	"github.com/orbitmsg/orbit/internal/client/session"
	"github.com/orbitmsg/orbit/internal/models"
)

//go:generate moq -out session_storage_mock.go . SessionStorage

// SessionStorage defines interface for persisting the client session
type SessionStorage interface {
	// SaveSession stores or replaces the current session
	SaveSession(ctx context.Context, s *session.Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*session.Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

//go:generate moq -out entity_storage_mock.go . EntityStorage

// EntityStorage defines interface for persisting entity snapshots
// between runs. Используется для "тёплого" старта репозитория:
// кеш восстанавливается до первого запроса к серверу.
type EntityStorage interface {
	// SaveEntities stores or replaces entity snapshots by (kind, id)
	SaveEntities(ctx context.Context, es []models.Entity) error

	// LoadEntities returns all stored entity snapshots
	LoadEntities(ctx context.Context) ([]models.Entity, error)

	// Clear removes all stored entity snapshots
	Clear(ctx context.Context) error
}
