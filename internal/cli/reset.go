package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear a session's keywords and messages",
		Run:   runReset,
	}

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
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

	if err := s.Reset(ctx, sess.ID); err != nil {
		exitErr("reset", err)
	}

	fmt.Printf(`{"ok":true,"session":%q}`+"\n", sess.Name)
}
