// Package store persists session keyword state and message history
// between invocations, backed by SQLite.
package store

import (
	"context"

	"github.com/rcliao/salience/internal/model"
)

// Store defines the session persistence interface.
type Store interface {
	// Session returns the named session, creating it on first use.
	Session(ctx context.Context, name string) (*model.Session, error)

	// Sessions lists all sessions, oldest first.
	Sessions(ctx context.Context) ([]model.Session, error)

	// Keywords returns a session's keyword snapshot in descending
	// weight order (ties lexicographic).
	Keywords(ctx context.Context, sessionID string) ([]model.Keyword, error)

	// SaveKeywords upserts a keyword snapshot into a session.
	SaveKeywords(ctx context.Context, sessionID string, keywords []model.Keyword) error

	// AppendMessage appends a normalized message to a session's log.
	AppendMessage(ctx context.Context, sessionID, text string) (*model.Message, error)

	// Messages returns a session's message log in feed order.
	Messages(ctx context.Context, sessionID string, limit int) ([]model.Message, error)

	// Reset deletes a session's keywords and messages.
	Reset(ctx context.Context, sessionID string) error

	// Close closes the store.
	Close() error
}
