package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List a session's stored keywords with weights",
		Run:   runKeywords,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runKeywords(cmd *cobra.Command, args []string) {
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

	keywords, err := s.Keywords(ctx, sess.ID)
	if err != nil {
		exitErr("keywords", err)
	}
	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}

	if formatFlag == "text" {
		for _, k := range keywords {
			fmt.Printf("%2d %s\n", k.Weight, k.Word)
		}
		return
	}

	if len(keywords) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(keywords, "", "  ")
	fmt.Println(string(b))
}
