package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/salience/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS keywords (
		session_id TEXT NOT NULL REFERENCES sessions(id),
		word       TEXT NOT NULL,
		weight     INTEGER NOT NULL,
		PRIMARY KEY (session_id, word)
	);
	CREATE INDEX IF NOT EXISTS idx_keywords_weight ON keywords(session_id, weight DESC);

	CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		seq        INTEGER NOT NULL,
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Session returns the named session, creating it on first use.
func (s *SQLiteStore) Session(ctx context.Context, name string) (*model.Session, error) {
	if name == "" {
		return nil, fmt.Errorf("session name is required")
	}

	sess := &model.Session{Name: name}
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM sessions WHERE name = ?`, name).
		Scan(&sess.ID, &createdAt)
	if err == nil {
		sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		return sess, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	now := time.Now().UTC()
	sess.ID = s.newID()
	sess.CreatedAt = now
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, name, created_at) VALUES (?, ?, ?)`,
		sess.ID, name, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Sessions lists all sessions, oldest first.
func (s *SQLiteStore) Sessions(ctx context.Context) ([]model.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM sessions ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var sess model.Session
		var createdAt string
		if err := rows.Scan(&sess.ID, &sess.Name, &createdAt); err != nil {
			return nil, err
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Keywords returns a session's keyword snapshot in descending weight
// order, ties broken lexicographically.
func (s *SQLiteStore) Keywords(ctx context.Context, sessionID string) ([]model.Keyword, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, weight FROM keywords
		 WHERE session_id = ?
		 ORDER BY weight DESC, word`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []model.Keyword
	for rows.Next() {
		var k model.Keyword
		if err := rows.Scan(&k.Word, &k.Weight); err != nil {
			return nil, err
		}
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

// SaveKeywords upserts a keyword snapshot into a session.
func (s *SQLiteStore) SaveKeywords(ctx context.Context, sessionID string, keywords []model.Keyword) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, k := range keywords {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO keywords (session_id, word, weight) VALUES (?, ?, ?)
			 ON CONFLICT(session_id, word) DO UPDATE SET weight = excluded.weight`,
			sessionID, k.Word, k.Weight)
		if err != nil {
			return fmt.Errorf("upsert keyword %q: %w", k.Word, err)
		}
	}

	return tx.Commit()
}

// AppendMessage appends a normalized message to a session's log.
func (s *SQLiteStore) AppendMessage(ctx context.Context, sessionID, text string) (*model.Message, error) {
	now := time.Now().UTC()
	msg := &model.Message{
		ID:        s.newID(),
		Session:   sessionID,
		Text:      text,
		CreatedAt: now,
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE session_id = ?`,
		sessionID).Scan(&msg.Seq)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO messages (id, session_id, seq, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, sessionID, msg.Seq, text, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// Messages returns a session's message log in feed order.
func (s *SQLiteStore) Messages(ctx context.Context, sessionID string, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, seq, text, created_at FROM messages
		 WHERE session_id = ? ORDER BY seq LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Session, &m.Seq, &m.Text, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Reset deletes a session's keywords and messages. The session row
// itself stays so the name keeps its identity.
func (s *SQLiteStore) Reset(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM keywords WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
