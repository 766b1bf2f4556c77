package main

import (
	"github.com/spf13/cobra"

	"github.com/hrsuite/portal-go/internal/domain/leave"
	leavesvc "github.com/hrsuite/portal-go/internal/service/leave"
)

func newLeaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave applications and approvals",
	}
	cmd.AddCommand(newLeaveApplyCmd())
	cmd.AddCommand(newLeaveDetailCmd())
	cmd.AddCommand(newLeaveCancelCmd())
	cmd.AddCommand(newLeaveProcessCmd())
	cmd.AddCommand(newLeaveApprovalsCmd())
	cmd.AddCommand(newLeaveBalanceCmd())
	cmd.AddCommand(newLeaveClockRangeCmd())
	return cmd
}

func newLeaveApplyCmd() *cobra.Command {
	var req leave.ApplyRequest

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit a leave application",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			resp, err := a.leave.Apply(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(resp)
		},
	}

	cmd.Flags().StringVar(&req.LeaveTypeID, "type", "", "Leave type id (required)")
	cmd.Flags().StringVar(&req.LeaveReasonID, "reason-id", "", "Leave reason id")
	cmd.Flags().StringVar(&req.DateFrom, "from", "", "First day, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.DateTo, "to", "", "Last day, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "Free-form reason")
	cmd.Flags().StringVar(&req.AttachmentPath, "attachment", "", "Path to a supporting document")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newLeaveDetailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail <control-number>",
		Short: "Show a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			detail, err := a.leave.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(detail)
		},
	}
}

func newLeaveCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <control-number>",
		Short: "Withdraw a pending leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.leave.Cancel(cmd.Context(), args[0])
		},
	}
}

func newLeaveProcessCmd() *cobra.Command {
	var (
		action   string
		comments string
	)

	cmd := &cobra.Command{
		Use:   "process <control-number>",
		Short: "Approve or disapprove a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.leave.Process(cmd.Context(), args[0], leave.ProcessRequest{
				Action:   action,
				Comments: comments,
			})
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "approve or disapprove (required)")
	cmd.Flags().StringVar(&comments, "comments", "", "Approver comments")
	_ = cmd.MarkFlagRequired("action")
	return cmd
}

func newLeaveApprovalsCmd() *cobra.Command {
	var (
		search string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "List leave requests awaiting the approver",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			result, err := a.leave.SearchApprovals(cmd.Context(), search, page)
			if err != nil {
				return err
			}
			return writeJSON(result)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by employee name or control number")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

func newLeaveBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <leave-type-id>",
		Short: "Show the remaining balance for a leave type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			balance, err := a.leave.Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(balance)
		},
	}
}

func newLeaveClockRangeCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "clock-range",
		Short: "Set the custom clock range used for single-day applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.leave.SaveClockRange(leavesvc.ClockRange{From: from, To: to})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start of day, HH:MM (required)")
	cmd.Flags().StringVar(&to, "to", "", "End of day, HH:MM (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
