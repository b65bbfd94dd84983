package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rcliao/salience/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a session's state from JSON",
		Long:  "Import a session exported with the export command. Reads JSON from stdin; --session overrides the exported name.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var exp store.SessionExport
	if err := json.Unmarshal(data, &exp); err != nil {
		exitErr("parse json", err)
	}
	if cmd.Flags().Changed("session") || exp.Session == "" {
		exp.Session = sessionFlag
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	keywords, messages, err := s.Import(cmd.Context(), &exp)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"session":%q,"keywords":%d,"messages":%d}`+"\n",
		exp.Session, keywords, messages)
}
