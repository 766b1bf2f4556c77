package settings

import "github.com/hrsuite/portal-go/internal/pkg/validator"

// SaveRequest carries the fields for a create or update. Which fields are
// meaningful depends on the resource; the server ignores the rest.
type SaveRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Rate        string `json:"rate,omitempty"`
	Date        string `json:"date,omitempty"`
}

func (r *SaveRequest) Validate(resource Resource) error {
	var errs validator.ValidationErrors

	switch resource {
	case SundayExceptions:
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid date (YYYY-MM-DD)",
			})
		}
	case OJTRates:
		if validator.IsEmpty(r.Rate) {
			errs = append(errs, validator.ValidationError{
				Field:   "rate",
				Message: "rate is required",
			})
		}
	default:
		if validator.IsEmpty(r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name is required",
			})
		}
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
