package main

import (
	"github.com/spf13/cobra"

	"github.com/hrsuite/portal-go/internal/domain/settings"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "General-settings collections (departments, leave types, ...)",
	}
	cmd.AddCommand(newSettingsListCmd())
	cmd.AddCommand(newSettingsCreateCmd())
	cmd.AddCommand(newSettingsUpdateCmd())
	cmd.AddCommand(newSettingsDeleteCmd())
	return cmd
}

func newSettingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <resource>",
		Short: "List every item in a settings collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			items, err := a.settings.List(cmd.Context(), settings.Resource(args[0]))
			if err != nil {
				return err
			}
			return writeJSON(items)
		},
	}
}

func newSettingsCreateCmd() *cobra.Command {
	var req settings.SaveRequest

	cmd := &cobra.Command{
		Use:   "create <resource>",
		Short: "Add an item to a settings collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			item, err := a.settings.Create(cmd.Context(), settings.Resource(args[0]), req)
			if err != nil {
				return err
			}
			return writeJSON(item)
		},
	}

	addSaveFlags(cmd, &req)
	return cmd
}

func newSettingsUpdateCmd() *cobra.Command {
	var (
		id  int64
		req settings.SaveRequest
	)

	cmd := &cobra.Command{
		Use:   "update <resource>",
		Short: "Modify an item in a settings collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			item, err := a.settings.Update(cmd.Context(), settings.Resource(args[0]), id, req)
			if err != nil {
				return err
			}
			return writeJSON(item)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Item id (required)")
	_ = cmd.MarkFlagRequired("id")
	addSaveFlags(cmd, &req)
	return cmd
}

func newSettingsDeleteCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete <resource>",
		Short: "Remove an item from a settings collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.settings.Delete(cmd.Context(), settings.Resource(args[0]), id)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Item id (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func addSaveFlags(cmd *cobra.Command, req *settings.SaveRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Item name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Item description")
	cmd.Flags().StringVar(&req.Rate, "rate", "", "Rate (ojtrates only)")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date, YYYY-MM-DD (sundayexceptions only)")
}
