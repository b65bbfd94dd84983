package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List a session's message log",
		Long:  "List the normalized messages fed into a session, in feed order. The log is append-only and never read by the ranking path.",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 100, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

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

	messages, err := s.Messages(ctx, sess.ID, limit)
	if err != nil {
		exitErr("history", err)
	}

	if formatFlag == "text" {
		for _, m := range messages {
			fmt.Printf("%4d %s\n", m.Seq, m.Text)
		}
		return
	}

	if len(messages) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(messages, "", "  ")
	fmt.Println(string(b))
}
