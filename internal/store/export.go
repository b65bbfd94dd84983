package store

import (
	"context"
	"fmt"

	"github.com/rcliao/salience/internal/model"
)

// SessionExport is a full dump of one session's state, in the format
// consumed by Import.
type SessionExport struct {
	Session  string          `json:"session"`
	Keywords []model.Keyword `json:"keywords"`
	Messages []model.Message `json:"messages,omitempty"`
}

// Export returns a session's keywords and message log.
func (s *SQLiteStore) Export(ctx context.Context, name string) (*SessionExport, error) {
	sess, err := s.Session(ctx, name)
	if err != nil {
		return nil, err
	}

	keywords, err := s.Keywords(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	messages, err := s.Messages(ctx, sess.ID, 100000)
	if err != nil {
		return nil, err
	}

	return &SessionExport{Session: name, Keywords: keywords, Messages: messages}, nil
}

// Import loads an exported session. Keywords are upserted; messages
// are re-appended in their exported order. Returns the counts of
// imported keywords and messages.
func (s *SQLiteStore) Import(ctx context.Context, exp *SessionExport) (int, int, error) {
	if exp.Session == "" {
		return 0, 0, fmt.Errorf("export has no session name")
	}

	sess, err := s.Session(ctx, exp.Session)
	if err != nil {
		return 0, 0, err
	}

	if err := s.SaveKeywords(ctx, sess.ID, exp.Keywords); err != nil {
		return 0, 0, err
	}

	imported := 0
	for _, m := range exp.Messages {
		if _, err := s.AppendMessage(ctx, sess.ID, m.Text); err != nil {
			return len(exp.Keywords), imported, err
		}
		imported++
	}

	return len(exp.Keywords), imported, nil
}
