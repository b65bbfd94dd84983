package cli

import (
	"fmt"
	"os"

	"github.com/rcliao/salience/internal/engine"
	"github.com/spf13/cobra"
)

func init() {
	prioritizeCmd := &cobra.Command{
		Use:   "prioritize [word]",
		Short: "Bump a known keyword's weight by one",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runAdjust(cmd, args[0], true)
		},
	}

	trivializeCmd := &cobra.Command{
		Use:   "trivialize [word]",
		Short: "Lower a known keyword's weight by one",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runAdjust(cmd, args[0], false)
		},
	}

	RootCmd.AddCommand(prioritizeCmd)
	RootCmd.AddCommand(trivializeCmd)
}

func runAdjust(cmd *cobra.Command, word string, up bool) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	sess, err := s.Session(ctx, sessionFlag)
	if err != nil {
		exitErr("session", err)
	}

	eng, err := loadEngine(ctx, s, sess.ID, engine.DefaultConfig())
	if err != nil {
		exitErr("load session state", err)
	}

	ok := false
	if up {
		ok = eng.PrioritizeKeyword(word)
	} else {
		ok = eng.TrivializeKeyword(word)
	}
	if !ok {
		fmt.Printf(`{"ok":false,"word":%q}`+"\n", word)
		os.Exit(1)
	}

	if err := saveEngine(ctx, s, sess.ID, eng); err != nil {
		exitErr("save session state", err)
	}

	fmt.Printf(`{"ok":true,"word":%q}`+"\n", word)
}
