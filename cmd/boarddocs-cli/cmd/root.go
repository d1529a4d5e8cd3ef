package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"boarddocs-backend/lib/boarddocs"
	"boarddocs-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	site    string
	verbose bool
)

var shutdownTelemetry func()

var rootCmd = &cobra.Command{
	Use:   "boarddocs-cli",
	Short: "boarddocs-cli scrapes meetings, agendas and minutes from BoardDocs sites.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "boarddocs-cli")
		if os.IsNotExist(err) {
			// no telemetry.json5 around, spans go nowhere
			return
		}
		if err != nil {
			fatal(err)
		}
		shutdownTelemetry = func() {
			err := tel.Shutdown(context.Background())
			if err != nil {
				slog.Warn("failed to shut down telemetry", "err", err)
			}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shutdownTelemetry != nil {
			shutdownTelemetry()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&site, "site", "s", "", "BoardDocs site path segment (ex: vsba/arlington)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func newClient(cmd *cobra.Command) *boarddocs.Client {
	resolved := site
	if resolved == "" {
		config, err := readConfig()
		if err == nil {
			resolved = config.Site
		}
	}
	if resolved == "" {
		fatal(fmt.Errorf("specify a site with --site or in boarddocs.json5"))
	}

	client, err := boarddocs.NewClient(cmd.Context(), boarddocs.ClientOptions{
		Site: resolved,
	})
	if err != nil {
		fatal(err)
	}
	return client
}

// resolveCommittee turns a committee argument into a committee id,
// fuzzy-matching against the site's committee names when asked to.
func resolveCommittee(cmd *cobra.Command, client *boarddocs.Client, arg string, byName bool) string {
	if !byName {
		return arg
	}
	committees, err := client.Committees(cmd.Context())
	if err != nil {
		fatal(err)
	}
	match, err := boarddocs.MatchCommittee(committees, arg)
	if err != nil {
		fatal(err)
	}
	slog.Debug("matched committee", "name", match.Name, "id", match.ID)
	return match.ID
}
