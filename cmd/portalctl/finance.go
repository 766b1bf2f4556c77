package main

import (
	"github.com/spf13/cobra"

	"github.com/hrsuite/portal-go/internal/domain/finance"
)

func newFinanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Finance employee records and bulk uploads",
	}
	cmd.AddCommand(newFinanceListCmd())
	cmd.AddCommand(newFinanceChartCmd())
	cmd.AddCommand(newFinanceUploadCmd())
	return cmd
}

func newFinanceListCmd() *cobra.Command {
	var (
		page       int
		search     string
		department string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List finance employee rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			result, err := a.finance.ListEmployees(cmd.Context(), page, search, department)
			if err != nil {
				return err
			}
			return writeJSON(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().StringVar(&search, "search", "", "Search by name or id number")
	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	return cmd
}

func newFinanceChartCmd() *cobra.Command {
	var (
		category  string
		chartType string
		period    string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Fetch finance chart data",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			chart, err := a.finance.ChartData(cmd.Context(), category, chartType, period)
			if err != nil {
				return err
			}
			return writeJSON(chart)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Chart category, e.g. loans")
	cmd.Flags().StringVar(&chartType, "type", "", "Chart type, e.g. monthly")
	cmd.Flags().StringVar(&period, "period", "", "Period, e.g. 2024")
	return cmd
}

func newFinanceUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <type> <file.xlsx|file.xls>",
		Short: "Bulk upload a finance spreadsheet",
		Long: "Uploads a spreadsheet to the finance import endpoint for the " +
			"given type. Rows the server could not take are written to an " +
			"error report spreadsheet in the configured report directory.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			result, err := a.finance.Upload(cmd.Context(), finance.UploadType(args[0]), args[1])
			if err != nil {
				return err
			}
			return writeJSON(result)
		},
	}
	return cmd
}
