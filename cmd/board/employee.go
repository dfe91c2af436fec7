package main

import (
	"github.com/spf13/cobra"

	"github.com/coffeelounge/shiftboard/internal/board/client"
)

var (
	employeePhone string
	employeeRate  float64
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage the employee roster",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees on the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return synchronizer.RefreshEmployees(cmd.Context())
	},
}

var employeesAddCmd = &cobra.Command{
	Use:   "add <full name> <role>",
	Short: "Add an employee to the roster",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := client.EmployeeDraft{FullName: args[0], Role: args[1]}
		if employeePhone != "" {
			draft.Phone = &employeePhone
		}
		if cmd.Flags().Changed("rate") {
			draft.HourlyRate = &employeeRate
		}
		return synchronizer.SubmitEmployee(cmd.Context(), draft)
	},
}

func init() {
	employeesAddCmd.Flags().StringVar(&employeePhone, "phone", "", "contact phone number")
	employeesAddCmd.Flags().Float64Var(&employeeRate, "rate", 0, "hourly rate")

	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesAddCmd)
}
