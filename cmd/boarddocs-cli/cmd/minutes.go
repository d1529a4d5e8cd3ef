package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var minutesByName bool

var minutesCmd = &cobra.Command{
	Use:   "minutes <committee> <meeting>",
	Short: "Print the embedded minutes of one meeting, if any.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		committeeID := resolveCommittee(cmd, client, args[0], minutesByName)

		text, err := client.Minutes(cmd.Context(), committeeID, args[1])
		if err != nil {
			fatal(err)
		}
		if text == "" {
			fmt.Println("no embedded minutes")
			return
		}
		fmt.Println(text)
	},
}

func init() {
	minutesCmd.Flags().BoolVar(&minutesByName, "by-name", false, "treat <committee> as a display name instead of an id")
	rootCmd.AddCommand(minutesCmd)
}
