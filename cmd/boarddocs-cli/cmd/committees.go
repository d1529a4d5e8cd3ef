package cmd

import (
	"boarddocs-backend/cmd/boarddocs-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var committeesCmd = &cobra.Command{
	Use:   "committees",
	Short: "List the committees published on a site.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)

		committees, err := client.Committees(cmd.Context())
		if err != nil {
			fatal(err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"committee_id", "name"})
		for _, committee := range committees {
			t.AppendRow(table.Row{committee.ID, committee.Name})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(committeesCmd)
}
