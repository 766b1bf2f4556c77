package timelog

import "github.com/hrsuite/portal-go/internal/pkg/validator"

type AddRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Entry      string `json:"entry"`
	Time       string `json:"time"`
}

func (r *AddRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.Entry, []string{EntryTimeIn, EntryTimeOut}) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry",
			Message: "entry must be either timein or timeout",
		})
	}
	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	Entry string `json:"entry,omitempty"`
	Time  string `json:"time,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Entry != "" && !validator.IsInSlice(r.Entry, []string{EntryTimeIn, EntryTimeOut}) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry",
			Message: "entry must be either timein or timeout",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	Employees []Employee `json:"employees"`
}

type ImportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
