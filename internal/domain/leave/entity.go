package leave

import "time"

// Holiday is a calendar date excluded from leave duration.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// SundayException is a Sunday administratively marked as a working day.
type SundayException struct {
	Date string `json:"date"`
}

// Calendar holds the holiday and Sunday-exception sets fetched once from the
// portal and kept for the client lifetime.
type Calendar struct {
	holidays         map[string]struct{}
	sundayExceptions map[string]struct{}
}

func NewCalendar(holidays []Holiday, exceptions []SundayException) *Calendar {
	c := &Calendar{
		holidays:         make(map[string]struct{}, len(holidays)),
		sundayExceptions: make(map[string]struct{}, len(exceptions)),
	}
	for _, h := range holidays {
		c.holidays[h.Date] = struct{}{}
	}
	for _, e := range exceptions {
		c.sundayExceptions[e.Date] = struct{}{}
	}
	return c
}

// IsHoliday reports whether the date is a holiday.
func (c *Calendar) IsHoliday(day time.Time) bool {
	_, ok := c.holidays[day.Format("2006-01-02")]
	return ok
}

// IsSundayException reports whether the date is an exempted Sunday.
func (c *Calendar) IsSundayException(day time.Time) bool {
	_, ok := c.sundayExceptions[day.Format("2006-01-02")]
	return ok
}

// IsWorkingDay reports whether the date counts toward leave duration. A day
// counts unless it is a holiday, or a Sunday absent from the exception set.
func (c *Calendar) IsWorkingDay(day time.Time) bool {
	if c.IsHoliday(day) {
		return false
	}
	if day.Weekday() == time.Sunday && !c.IsSundayException(day) {
		return false
	}
	return true
}

// LeaveRequest is a submitted leave application as the portal reports it.
// The control number is the server-assigned primary key used by the
// detail/cancel/process endpoints.
type LeaveRequest struct {
	ControlNumber string  `json:"control_number"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	DateFrom      string  `json:"date_from"`
	DateTo        string  `json:"date_to"`
	Days          float64 `json:"days"`
	Hours         float64 `json:"hours"`
	Reason        string  `json:"reason,omitempty"`
	Status        string  `json:"status"`
	Attachment    string  `json:"attachment,omitempty"`
}

// Leave request status values
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusDisapproved = "disapproved"
	StatusCancelled   = "cancelled"
)
