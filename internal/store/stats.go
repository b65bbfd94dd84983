package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string         `json:"db_path"`
	DBSizeBytes   int64          `json:"db_size_bytes"`
	Sessions      int            `json:"sessions"`
	TotalKeywords int            `json:"total_keywords"`
	TotalMessages int            `json:"total_messages"`
	PerSession    []SessionStats `json:"per_session,omitempty"`
}

// SessionStats holds per-session counts.
type SessionStats struct {
	Name       string `json:"name"`
	Keywords   int    `json:"keywords"`
	Messages   int    `json:"messages"`
	TopKeyword string `json:"top_keyword,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&st.Sessions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM keywords`).Scan(&st.TotalKeywords)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&st.TotalMessages)

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name,
		       (SELECT COUNT(*) FROM keywords k WHERE k.session_id = s.id),
		       (SELECT COUNT(*) FROM messages m WHERE m.session_id = s.id),
		       COALESCE((SELECT k.word FROM keywords k WHERE k.session_id = s.id
		                 ORDER BY k.weight DESC, k.word LIMIT 1), '')
		FROM sessions s ORDER BY s.created_at, s.name`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ss SessionStats
		rows.Scan(&ss.Name, &ss.Keywords, &ss.Messages, &ss.TopKeyword)
		st.PerSession = append(st.PerSession, ss)
	}

	return st, rows.Err()
}
