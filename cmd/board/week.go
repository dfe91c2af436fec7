package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Show the schedule grid for the week containing a date",
	Long: `week renders the Monday-to-Sunday schedule containing the given date
(YYYY-MM-DD). Without an argument it shows the current week.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor := time.Now().UTC()
		if len(args) == 1 {
			d, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}
			anchor = d
		}
		return synchronizer.LoadWeek(cmd.Context(), anchor)
	},
}
