package leave

import "errors"

var (
	ErrInvalidDateRange = errors.New("end date is earlier than start date")
	ErrNonWorkingRange  = errors.New("selected range contains no working days")
	ErrRequestNotFound  = errors.New("leave request not found")
)
