// Package cli implements the salience CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rcliao/salience/internal/engine"
	"github.com/rcliao/salience/internal/model"
	"github.com/rcliao/salience/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	formatFlag  string
	sessionFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "salience",
	Short: "Ranked keyword extraction over message streams",
	Long:  "Feed short messages in, read ranked keyword summaries back. Keyword weights accumulate per session. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $SALIENCE_DB or ~/.salience/salience.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "default", "Session name")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("SALIENCE_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".salience", "salience.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// loadEngine rehydrates an engine from the session's stored keyword
// snapshot.
func loadEngine(ctx context.Context, s *store.SQLiteStore, sessionID string, cfg engine.Config) (*engine.Engine, error) {
	keywords, err := s.Keywords(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	eng := engine.New(cfg)
	entries := make([]engine.Entry, len(keywords))
	for i, k := range keywords {
		entries[i] = engine.Entry{Word: k.Word, Weight: engine.Weight(k.Weight)}
	}
	eng.Restore(entries)
	return eng, nil
}

// saveEngine persists the engine's keyword snapshot back to the session.
func saveEngine(ctx context.Context, s *store.SQLiteStore, sessionID string, eng *engine.Engine) error {
	snapshot := eng.Keywords()
	keywords := make([]model.Keyword, len(snapshot))
	for i, e := range snapshot {
		keywords[i] = model.Keyword{Word: e.Word, Weight: uint64(e.Weight)}
	}
	return s.SaveKeywords(ctx, sessionID, keywords)
}
