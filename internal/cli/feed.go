package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "feed [message]",
		Short: "Feed a message and get its ranked keywords",
		Long:  "Feed one message into the session. Message can be a positional arg or piped via stdin. Prints the message's ranked keyword summary.",
		Run:   runFeed,
	}

	addConfigFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runFeed(cmd *cobra.Command, args []string) {
	var message string
	if len(args) > 0 {
		message = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			message = string(b)
		}
	}

	if strings.TrimSpace(message) == "" {
		exitErr("feed", fmt.Errorf("message is required (positional arg or stdin)"))
	}

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

	keywords := eng.Feed(message)

	if err := saveEngine(ctx, s, sess.ID, eng); err != nil {
		exitErr("save session state", err)
	}
	history := eng.History()
	if _, err := s.AppendMessage(ctx, sess.ID, history[len(history)-1]); err != nil {
		exitErr("append message", err)
	}

	if formatFlag == "text" {
		fmt.Println(keywords)
		return
	}
	b, _ := json.Marshal(map[string]string{"session": sess.Name, "keywords": keywords})
	fmt.Println(string(b))
}
