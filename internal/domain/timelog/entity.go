package timelog

// Employee is a portal employee with the day's time log entries nested.
type Employee struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	IDNumber string    `json:"idnumber"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	TimeLogs []TimeLog `json:"timelogs"`
}

// TimeLog is a single clock event.
type TimeLog struct {
	ID    int64  `json:"id"`
	Entry string `json:"entry"`
	Time  string `json:"time"`
}

// Entry values
const (
	EntryTimeIn  = "timein"
	EntryTimeOut = "timeout"
)
