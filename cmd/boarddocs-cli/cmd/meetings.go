package cmd

import (
	"boarddocs-backend/cmd/boarddocs-cli/utils"
	"boarddocs-backend/lib/boarddocs"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	meetingsFrom   string
	meetingsTo     string
	meetingsCsv    string
	meetingsByName bool
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings <committee>",
	Short: "List the meetings published for a committee.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		committeeID := resolveCommittee(cmd, client, args[0], meetingsByName)

		var dates *boarddocs.DateRange
		if meetingsFrom != "" || meetingsTo != "" {
			dates = &boarddocs.DateRange{From: meetingsFrom, To: meetingsTo}
		}

		meetings, err := client.Meetings(cmd.Context(), committeeID, dates)
		if err != nil {
			fatal(err)
		}

		if meetingsCsv != "" {
			err := writeMeetingsCsv(meetingsCsv, meetings)
			if err != nil {
				fatal(err)
			}
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"meeting_id", "numberdate", "name"})
		for _, m := range meetings {
			t.AppendRow(table.Row{m.ID, m.NumberDate, m.Name})
		}
		t.Render()
	},
}

func init() {
	meetingsCmd.Flags().StringVar(&meetingsFrom, "from", "", "keep meetings on or after this YYYYMMDD date")
	meetingsCmd.Flags().StringVar(&meetingsTo, "to", "", "keep meetings on or before this YYYYMMDD date")
	meetingsCmd.Flags().StringVar(&meetingsCsv, "csv", "", "also write the meetings to this csv file")
	meetingsCmd.Flags().BoolVar(&meetingsByName, "by-name", false, "treat <committee> as a display name instead of an id")
	rootCmd.AddCommand(meetingsCmd)
}
