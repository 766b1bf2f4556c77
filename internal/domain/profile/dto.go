package profile

import "github.com/hrsuite/portal-go/internal/pkg/validator"

// UpdateSectionRequest updates one section of the caller's own profile.
type UpdateSectionRequest struct {
	Section string            `json:"section"`
	Fields  map[string]string `json:"fields"`
}

func (r *UpdateSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Section) {
		errs = append(errs, validator.ValidationError{
			Field:   "section",
			Message: "section is required",
		})
	}
	if len(r.Fields) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fields",
			Message: "at least one field is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdminUpdateRequest updates an employee's profile on their behalf.
type AdminUpdateRequest struct {
	Fields map[string]string `json:"fields"`
}

func (r *AdminUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Fields) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fields",
			Message: "at least one field is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdminAction is a one-shot account state change on an employee.
type AdminAction string

const (
	ActionActivate      AdminAction = "activate"
	ActionDeactivate    AdminAction = "deactivate"
	ActionLock          AdminAction = "lock"
	ActionUnlock        AdminAction = "unlock"
	ActionApprove       AdminAction = "approve"
	ActionDisapprove    AdminAction = "disapprove"
	ActionDelete        AdminAction = "delete"
	ActionResetPassword AdminAction = "reset-password"
)

// AllAdminActions lists the supported account state changes.
func AllAdminActions() []AdminAction {
	return []AdminAction{
		ActionActivate, ActionDeactivate, ActionLock, ActionUnlock,
		ActionApprove, ActionDisapprove, ActionDelete, ActionResetPassword,
	}
}

// EducationRequest adds or updates an education record.
type EducationRequest struct {
	Level         string `json:"level"`
	School        string `json:"school"`
	Course        string `json:"course,omitempty"`
	YearGraduated string `json:"year_graduated,omitempty"`
}

func (r *EducationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Level) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level is required",
		})
	}
	if validator.IsEmpty(r.School) {
		errs = append(errs, validator.ValidationError{
			Field:   "school",
			Message: "school is required",
		})
	}
	if r.YearGraduated != "" && !validator.IsNumeric(r.YearGraduated) {
		errs = append(errs, validator.ValidationError{
			Field:   "year_graduated",
			Message: "year_graduated must be numeric",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type EducationResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	Education *Education `json:"education,omitempty"`
}

// Education is a stored education record.
type Education struct {
	ID            int64  `json:"id"`
	Level         string `json:"level"`
	School        string `json:"school"`
	Course        string `json:"course,omitempty"`
	YearGraduated string `json:"year_graduated,omitempty"`
}
