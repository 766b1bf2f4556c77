package main

import (
	"github.com/spf13/cobra"

	"github.com/hrsuite/portal-go/internal/domain/timelog"
)

func newTimelogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timelogs",
		Short: "Employee time log entries",
	}
	cmd.AddCommand(newTimelogsListCmd())
	cmd.AddCommand(newTimelogsAddCmd())
	cmd.AddCommand(newTimelogsUpdateCmd())
	cmd.AddCommand(newTimelogsDeleteCmd())
	cmd.AddCommand(newTimelogsImportCmd())
	return cmd
}

func newTimelogsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees with their time log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			employees, err := a.timelogs.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(employees)
		},
	}
}

func newTimelogsAddCmd() *cobra.Command {
	var (
		employeeID int64
		entry      string
		clockTime  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a clock event for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.timelogs.Add(cmd.Context(), timelog.AddRequest{
				EmployeeID: employeeID,
				Entry:      entry,
				Time:       clockTime,
			})
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee id (required)")
	cmd.Flags().StringVar(&entry, "entry", "", "Entry kind: timein or timeout (required)")
	cmd.Flags().StringVar(&clockTime, "time", "", "Clock time, HH:MM (required)")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newTimelogsUpdateCmd() *cobra.Command {
	var (
		id        int64
		entry     string
		clockTime string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Modify a clock event",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.timelogs.Update(cmd.Context(), id, timelog.UpdateRequest{
				Entry: entry,
				Time:  clockTime,
			})
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Time log id (required)")
	cmd.Flags().StringVar(&entry, "entry", "", "Entry kind: timein or timeout")
	cmd.Flags().StringVar(&clockTime, "time", "", "Clock time, HH:MM")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newTimelogsDeleteCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a clock event",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.timelogs.Delete(cmd.Context(), id)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Time log id (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newTimelogsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx|file.xls>",
		Short: "Bulk import time logs from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			resp, err := a.timelogs.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(resp)
		},
	}
}
