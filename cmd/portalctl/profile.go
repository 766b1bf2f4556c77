package main

import (
	"github.com/spf13/cobra"

	"github.com/hrsuite/portal-go/internal/domain/profile"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile sections, admin actions and education records",
	}
	cmd.AddCommand(newProfileUpdateCmd())
	cmd.AddCommand(newProfileAdminUpdateCmd())
	cmd.AddCommand(newProfileAdminActionCmd())
	cmd.AddCommand(newProfileEducationCmd())
	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var (
		section string
		fields  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one section of your own profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.profile.UpdateSection(cmd.Context(), profile.UpdateSectionRequest{
				Section: section,
				Fields:  fields,
			})
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Profile section (required)")
	cmd.Flags().StringToStringVar(&fields, "field", nil, "Field to set, key=value (repeatable)")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func newProfileAdminUpdateCmd() *cobra.Command {
	var (
		employeeID int64
		fields     map[string]string
	)

	cmd := &cobra.Command{
		Use:   "admin-update",
		Short: "Update an employee's profile on their behalf",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.profile.AdminUpdateEmployee(cmd.Context(), employeeID, profile.AdminUpdateRequest{
				Fields: fields,
			})
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee id (required)")
	cmd.Flags().StringToStringVar(&fields, "field", nil, "Field to set, key=value (repeatable)")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func newProfileAdminActionCmd() *cobra.Command {
	var employeeID int64

	cmd := &cobra.Command{
		Use:   "admin-action <action>",
		Short: "Apply an account state change: activate, lock, reset-password, ...",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.profile.AdminAction(cmd.Context(), employeeID, profile.AdminAction(args[0]))
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee id (required)")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func newProfileEducationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "education",
		Short: "Education records on your profile",
	}

	var (
		id  int64
		req profile.EducationRequest
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an education record",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			record, err := a.profile.AddEducation(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(record)
		},
	}
	addEducationFlags(addCmd, &req)

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Modify an education record",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			record, err := a.profile.UpdateEducation(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return writeJSON(record)
		},
	}
	updateCmd.Flags().Int64Var(&id, "id", 0, "Education record id (required)")
	_ = updateCmd.MarkFlagRequired("id")
	addEducationFlags(updateCmd, &req)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an education record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			recordID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.profile.DeleteEducation(cmd.Context(), recordID)
		},
	}

	cmd.AddCommand(addCmd, updateCmd, deleteCmd)
	return cmd
}

func addEducationFlags(cmd *cobra.Command, req *profile.EducationRequest) {
	cmd.Flags().StringVar(&req.Level, "level", "", "Education level (required)")
	cmd.Flags().StringVar(&req.School, "school", "", "School name (required)")
	cmd.Flags().StringVar(&req.Course, "course", "", "Course taken")
	cmd.Flags().StringVar(&req.YearGraduated, "year", "", "Year graduated")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("school")
}
