package main

import (
	"github.com/spf13/cobra"

	"github.com/coffeelounge/shiftboard/internal/board/client"
)

var shiftEmployeeID int64

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Manage shifts",
}

var shiftAddCmd = &cobra.Command{
	Use:   "add <date> <start> <end> <position>",
	Short: "Create a shift",
	Long: `shift add creates a shift on the given date (YYYY-MM-DD) between
start and end (HH:MM). Without --employee the shift is created open and shows
up on the board's shared open-shift row.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := client.ShiftDraft{
			Date:      args[0],
			StartTime: args[1],
			EndTime:   args[2],
			Position:  args[3],
		}
		if cmd.Flags().Changed("employee") {
			draft.EmployeeID = &shiftEmployeeID
		}
		return synchronizer.SubmitShift(cmd.Context(), draft)
	},
}

func init() {
	shiftAddCmd.Flags().Int64Var(&shiftEmployeeID, "employee", 0, "employee id to assign the shift to")
	shiftCmd.AddCommand(shiftAddCmd)
}
