package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rcliao/salience/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSession_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sess, err := s.Session(ctx, "default")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.ID == "" {
		t.Error("expected non-empty ID")
	}

	again, err := s.Session(ctx, "default")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if again.ID != sess.ID {
		t.Errorf("expected same session, got %q and %q", sess.ID, again.ID)
	}

	other, _ := s.Session(ctx, "other")
	if other.ID == sess.ID {
		t.Error("distinct names must map to distinct sessions")
	}

	if _, err := s.Session(ctx, ""); err == nil {
		t.Error("expected error for empty session name")
	}
}

func TestKeywords_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess, _ := s.Session(ctx, "default")

	err := s.SaveKeywords(ctx, sess.ID, []model.Keyword{
		{Word: "mate", Weight: 2},
		{Word: "there", Weight: 1},
		{Word: "sample", Weight: 4},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Keywords(ctx, sess.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.Keyword{
		{Word: "sample", Weight: 4},
		{Word: "mate", Weight: 2},
		{Word: "there", Weight: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	// Upsert replaces the stored weight.
	s.SaveKeywords(ctx, sess.ID, []model.Keyword{{Word: "mate", Weight: 9}})
	got, _ = s.Keywords(ctx, sess.ID)
	if got[0].Word != "mate" || got[0].Weight != 9 {
		t.Errorf("expected mate/9 first, got %+v", got[0])
	}
}

func TestKeywords_SessionIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	a, _ := s.Session(ctx, "a")
	b, _ := s.Session(ctx, "b")

	s.SaveKeywords(ctx, a.ID, []model.Keyword{{Word: "alpha", Weight: 1}})

	got, err := s.Keywords(ctx, b.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no keywords in session b, got %d", len(got))
	}
}

func TestMessages_AppendOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess, _ := s.Session(ctx, "default")

	for _, text := range []string{"first message", "second message", "third message"} {
		if _, err := s.AppendMessage(ctx, sess.ID, text); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Messages(ctx, sess.ID, 0)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	for i, m := range got {
		if m.Seq != i+1 {
			t.Errorf("message %d: expected seq %d, got %d", i, i+1, m.Seq)
		}
	}
	if got[0].Text != "first message" || got[2].Text != "third message" {
		t.Errorf("unexpected order: %q ... %q", got[0].Text, got[2].Text)
	}

	limited, _ := s.Messages(ctx, sess.ID, 2)
	if len(limited) != 2 {
		t.Errorf("expected 2 messages with limit, got %d", len(limited))
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess, _ := s.Session(ctx, "default")

	s.SaveKeywords(ctx, sess.ID, []model.Keyword{{Word: "gone", Weight: 3}})
	s.AppendMessage(ctx, sess.ID, "gone soon")

	if err := s.Reset(ctx, sess.ID); err != nil {
		t.Fatalf("reset: %v", err)
	}

	kws, _ := s.Keywords(ctx, sess.ID)
	if len(kws) != 0 {
		t.Errorf("expected no keywords after reset, got %d", len(kws))
	}
	msgs, _ := s.Messages(ctx, sess.ID, 0)
	if len(msgs) != 0 {
		t.Errorf("expected no messages after reset, got %d", len(msgs))
	}

	// Session identity survives a reset.
	again, _ := s.Session(ctx, "default")
	if again.ID != sess.ID {
		t.Error("reset must not recreate the session")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess, _ := s.Session(ctx, "default")
	s.SaveKeywords(ctx, sess.ID, []model.Keyword{
		{Word: "mate", Weight: 2},
		{Word: "there", Weight: 1},
	})
	s.AppendMessage(ctx, sess.ID, "are you there mate")

	st, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Sessions != 1 || st.TotalKeywords != 2 || st.TotalMessages != 1 {
		t.Errorf("unexpected totals: %+v", st)
	}
	if len(st.PerSession) != 1 {
		t.Fatalf("expected 1 session entry, got %d", len(st.PerSession))
	}
	if st.PerSession[0].TopKeyword != "mate" {
		t.Errorf("expected top keyword mate, got %q", st.PerSession[0].TopKeyword)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess, _ := s.Session(ctx, "source")
	s.SaveKeywords(ctx, sess.ID, []model.Keyword{
		{Word: "sample", Weight: 4},
		{Word: "message", Weight: 2},
	})
	s.AppendMessage(ctx, sess.ID, "this is just a sample message ")

	exp, err := s.Export(ctx, "source")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exp.Keywords) != 2 || len(exp.Messages) != 1 {
		t.Fatalf("unexpected export: %+v", exp)
	}

	dest := newTestStore(t)
	exp.Session = "restored"
	nk, nm, err := dest.Import(ctx, exp)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if nk != 2 || nm != 1 {
		t.Errorf("expected 2 keywords and 1 message imported, got %d and %d", nk, nm)
	}

	rsess, _ := dest.Session(ctx, "restored")
	kws, _ := dest.Keywords(ctx, rsess.ID)
	if len(kws) != 2 || kws[0].Word != "sample" {
		t.Errorf("unexpected imported keywords: %+v", kws)
	}
}
