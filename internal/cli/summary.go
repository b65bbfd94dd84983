package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Ranked keywords of the whole session",
		Long:  "Print the session's accumulated keywords in descending weight order, without feeding a new message.",
		Run:   runSummary,
	}

	addConfigFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runSummary(cmd *cobra.Command, args []string) {
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

	eng, err := loadEngine(ctx, s, sess.ID, configFromFlags(cmd))
	if err != nil {
		exitErr("load session state", err)
	}

	keywords := eng.FeedEmpty()

	if formatFlag == "text" {
		fmt.Println(keywords)
		return
	}
	b, _ := json.Marshal(map[string]string{"session": sess.Name, "keywords": keywords})
	fmt.Println(string(b))
}
