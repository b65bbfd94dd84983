package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	sessionCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session management",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		Run:   runSessionList,
	}

	sessionCmd.AddCommand(listCmd)
	RootCmd.AddCommand(sessionCmd)
}

func runSessionList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := s.Sessions(cmd.Context())
	if err != nil {
		exitErr("list sessions", err)
	}

	if len(sessions) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(sessions, "", "  ")
	fmt.Println(string(b))
}
