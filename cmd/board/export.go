package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coffeelounge/shiftboard/internal/board/export"
	"github.com/coffeelounge/shiftboard/internal/board/schedule"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [date]",
	Short: "Export the week schedule as a PDF",
	Long: `export writes a printable PDF of the week containing the given date
(YYYY-MM-DD, default today) to the file named by --output.`,
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

		shifts, err := store.ListWeekSchedule(cmd.Context(), anchor)
		if err != nil {
			presenter.Notify(err)
			return err
		}
		week := schedule.Aggregate(shifts)

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOutput, err)
		}
		defer f.Close()

		title := "Week of " + anchor.Format("2006-01-02")
		if err := export.WeekPDF(f, title, week); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "schedule.pdf", "output file")
}
