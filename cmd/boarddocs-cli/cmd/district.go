package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"boarddocs-backend/lib/boarddocs"
	"boarddocs-backend/lib/meetingstore"
	"boarddocs-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	districtCommittees []string
	districtFrom       string
	districtTo         string
	districtOutput     string
	districtDb         string
)

var districtCmd = &cobra.Command{
	Use:   "district",
	Short: "Scrape every configured committee: a meetings csv plus one agenda json per meeting.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := readConfig()
		if err != nil && !os.IsNotExist(err) {
			fatal(err)
		}

		committees := districtCommittees
		if len(committees) == 0 {
			committees = config.Committees
		}
		if len(committees) == 0 {
			fatal(fmt.Errorf("specify committees with --committee or in boarddocs.json5"))
		}
		from := districtFrom
		if from == "" {
			from = config.From
		}
		to := districtTo
		if to == "" {
			to = config.To
		}
		output := districtOutput
		if output == "" {
			output = config.OutputDir
		}
		if output == "" {
			output = "."
		}
		dbPath := districtDb
		if dbPath == "" {
			dbPath = config.DbPath
		}

		client := newClient(cmd)
		telemetry.InstrumentPerfStats(cmd.Context())

		var dates *boarddocs.DateRange
		if from != "" || to != "" {
			dates = &boarddocs.DateRange{From: from, To: to}
		}

		meetings, agendas, err := client.District(cmd.Context(), committees, dates)
		if err != nil {
			fatal(err)
		}

		err = os.MkdirAll(output, 0755)
		if err != nil {
			fatal(err)
		}
		err = writeMeetingsCsv(filepath.Join(output, "meetings.csv"), meetings)
		if err != nil {
			fatal(err)
		}
		for _, agenda := range agendas {
			err := writeAgendaJson(
				filepath.Join(output, fmt.Sprintf("agenda-%s.json", agenda.MeetingID)),
				agenda,
			)
			if err != nil {
				fatal(err)
			}
		}

		if dbPath != "" {
			store, err := meetingstore.Open(dbPath)
			if err != nil {
				fatal(err)
			}
			err = store.PutMeetings(cmd.Context(), meetings)
			if err != nil {
				fatal(err)
			}
			for _, agenda := range agendas {
				err := store.PutAgenda(cmd.Context(), agenda)
				if err != nil {
					fatal(err)
				}
			}
		}

		slog.Info(
			"district scrape complete",
			"committees", len(committees),
			"meetings", len(meetings),
			"output", output,
		)
	},
}

func init() {
	districtCmd.Flags().StringSliceVar(&districtCommittees, "committee", nil, "committee id to scrape, repeatable")
	districtCmd.Flags().StringVar(&districtFrom, "from", "", "keep meetings on or after this YYYYMMDD date")
	districtCmd.Flags().StringVar(&districtTo, "to", "", "keep meetings on or before this YYYYMMDD date")
	districtCmd.Flags().StringVar(&districtOutput, "output", "", "directory to write the csv and json files to")
	districtCmd.Flags().StringVar(&districtDb, "db", "", "also persist results to this sqlite database")
	rootCmd.AddCommand(districtCmd)
}
