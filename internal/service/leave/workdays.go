package leave

import (
	"fmt"
	"time"

	"github.com/hrsuite/portal-go/internal/domain/leave"
	"github.com/hrsuite/portal-go/internal/pkg/validator"
)

// Default clock range prefilled for single-day leave.
const (
	DefaultClockFrom = "07:00"
	DefaultClockTo   = "16:00"
)

const hoursPerWorkingDay = 8

// ClockRange is a custom time-of-day range ("HH:MM") applied when a leave
// spans exactly one working day.
type ClockRange struct {
	From string
	To   string
}

// Minutes returns the range length in minutes, floored at zero.
func (r ClockRange) Minutes() (int, error) {
	from, ok := validator.IsValidClockTime(r.From)
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", r.From)
	}
	to, ok := validator.IsValidClockTime(r.To)
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", r.To)
	}
	minutes := int(to.Sub(from).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return minutes, nil
}

// Duration is the billable outcome of a leave date range.
type Duration struct {
	WorkingDays int
	Hours       float64
}

// Calculator counts working days against the holiday and Sunday-exception
// calendar.
type Calculator struct {
	calendar *leave.Calendar
}

func NewCalculator(calendar *leave.Calendar) *Calculator {
	return &Calculator{calendar: calendar}
}

// WorkingDays counts working days in the inclusive range. A day counts
// unless it is a holiday, or a Sunday not present in the exception set.
func (c *Calculator) WorkingDays(from, to time.Time) (int, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return 0, leave.ErrInvalidDateRange
	}

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.calendar.IsWorkingDay(d) {
			days++
		}
	}
	return days, nil
}

// Duration derives billable days and hours for the range. A single working
// day with a custom clock range bills the clock minutes; every other case
// bills eight hours per working day. A range with no working days returns
// ErrNonWorkingRange so callers can render that state distinctly.
func (c *Calculator) Duration(from, to time.Time, custom *ClockRange) (Duration, error) {
	days, err := c.WorkingDays(from, to)
	if err != nil {
		return Duration{}, err
	}
	if days == 0 {
		return Duration{}, leave.ErrNonWorkingRange
	}

	if days == 1 && custom != nil {
		minutes, err := custom.Minutes()
		if err != nil {
			return Duration{}, err
		}
		return Duration{WorkingDays: days, Hours: float64(minutes) / 60}, nil
	}

	return Duration{WorkingDays: days, Hours: float64(days * hoursPerWorkingDay)}, nil
}

// ParseDay parses a YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	day, ok := validator.IsValidDate(s)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
