package cmd

import (
	"fmt"

	"boarddocs-backend/cmd/boarddocs-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	agendaJson   string
	agendaByName bool
)

var agendaCmd = &cobra.Command{
	Use:   "agenda <committee> <meeting>",
	Short: "Extract the detailed agenda of one meeting.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		committeeID := resolveCommittee(cmd, client, args[0], agendaByName)

		agenda, err := client.Agenda(cmd.Context(), committeeID, args[1])
		if err != nil {
			fatal(err)
		}

		if agendaJson != "" {
			err := writeAgendaJson(agendaJson, agenda)
			if err != nil {
				fatal(err)
			}
		}

		fmt.Printf("%s (%s)\n", agenda.Name, agenda.Date)
		if agenda.Description != "" {
			fmt.Println(agenda.Description)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"item"})
		for _, item := range agenda.Items {
			t.AppendRow(table.Row{item})
		}
		t.Render()

		t = utils.NewTable()
		t.AppendHeader(table.Row{"item", "file", "url"})
		for _, file := range agenda.Files {
			t.AppendRow(table.Row{file.Item, file.Name, file.Href})
		}
		t.Render()
	},
}

func init() {
	agendaCmd.Flags().StringVar(&agendaJson, "json", "", "write the full agenda record to this json file")
	agendaCmd.Flags().BoolVar(&agendaByName, "by-name", false, "treat <committee> as a display name instead of an id")
	rootCmd.AddCommand(agendaCmd)
}
