package leave

import "github.com/hrsuite/portal-go/internal/pkg/validator"

// ApplyRequest is a leave-application draft. The attachment is optional and
// uploaded alongside the form fields when present.
type ApplyRequest struct {
	LeaveTypeID    string `json:"leave_type_id"`
	LeaveReasonID  string `json:"leave_reason_id"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	Reason         string `json:"reason"`
	AttachmentPath string `json:"-"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.DateFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be a valid date (YYYY-MM-DD)",
		})
	}

	to, toOK := validator.IsValidDate(r.DateTo)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be a valid date (YYYY-MM-DD)",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be earlier than date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProcessRequest is the approver's decision on a leave request.
type ProcessRequest struct {
	Action   string `json:"action"`
	Comments string `json:"comments,omitempty"`
}

// Process actions
const (
	ActionApprove    = "approve"
	ActionDisapprove = "disapprove"
)

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{ActionApprove, ActionDisapprove}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be either approve or disapprove",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidaysAndExceptionsResponse struct {
	Success          bool              `json:"success"`
	Holidays         []Holiday         `json:"holidays"`
	SundayExceptions []SundayException `json:"sunday_exceptions"`
}

type CheckApproverResponse struct {
	Success    bool `json:"success"`
	IsApprover bool `json:"is_approver"`
}

type BalanceResponse struct {
	Success   bool    `json:"success"`
	LeaveType string  `json:"leave_type"`
	Balance   float64 `json:"balance"`
	Used      float64 `json:"used"`
}

type ApprovalsPage struct {
	Success     bool           `json:"success"`
	Approvals   []LeaveRequest `json:"approvals"`
	PageNumber  int            `json:"page_number"`
	TotalPages  int            `json:"total_pages"`
	TotalCount  int            `json:"total_count"`
	HasPrevious bool           `json:"has_previous"`
	HasNext     bool           `json:"has_next"`
}

type ApplyResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	ControlNumber string `json:"control_number,omitempty"`
}

type DetailResponse struct {
	Success bool          `json:"success"`
	Request *LeaveRequest `json:"request,omitempty"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ChartData mirrors the portal's chart payloads: labels plus one or more
// datasets of points aligned to them.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartDataResponse struct {
	Success   bool      `json:"success"`
	ChartData ChartData `json:"chart_data"`
}
