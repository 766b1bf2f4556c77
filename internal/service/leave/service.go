package leave

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"sync"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/domain/leave"
	"github.com/hrsuite/portal-go/internal/pkg/prefs"
)

// Service exposes the leave endpoints: application, balance, approvals and
// the holiday/Sunday-exception calendar backing the duration calculator.
type Service struct {
	client *api.Client
	prefs  *prefs.Store

	mu       sync.Mutex
	calendar *leave.Calendar
}

func NewService(client *api.Client, prefsStore *prefs.Store) *Service {
	return &Service{
		client: client,
		prefs:  prefsStore,
	}
}

// Calendar fetches the holiday and Sunday-exception sets, once per client
// lifetime.
func (s *Service) Calendar(ctx context.Context) (*leave.Calendar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calendar != nil {
		return s.calendar, nil
	}

	var resp leave.HolidaysAndExceptionsResponse
	if err := s.client.Get(ctx, "/leave/api/holidays-and-exceptions/", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to load holidays and exceptions: %w", err)
	}

	s.calendar = leave.NewCalendar(resp.Holidays, resp.SundayExceptions)
	return s.calendar, nil
}

// Calculator returns a duration calculator over the fetched calendar.
func (s *Service) Calculator(ctx context.Context) (*Calculator, error) {
	calendar, err := s.Calendar(ctx)
	if err != nil {
		return nil, err
	}
	return NewCalculator(calendar), nil
}

// CheckApprover reports whether the current user approves leave requests.
func (s *Service) CheckApprover(ctx context.Context) (bool, error) {
	var resp leave.CheckApproverResponse
	if err := s.client.Get(ctx, "/leave/api/check-approver/", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsApprover, nil
}

// Balance returns the remaining balance for a leave type.
func (s *Service) Balance(ctx context.Context, leaveTypeID string) (*leave.BalanceResponse, error) {
	query := url.Values{"leave_type_id": {leaveTypeID}}
	var resp leave.BalanceResponse
	if err := s.client.Get(ctx, "/leave/ajax/balance/", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchApprovals returns a page of leave requests awaiting the approver.
func (s *Service) SearchApprovals(ctx context.Context, search string, page int) (*leave.ApprovalsPage, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var resp leave.ApprovalsPage
	if err := s.client.Get(ctx, "/leave/ajax/search-approvals/", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChartData returns the user's leave usage chart payload.
func (s *Service) ChartData(ctx context.Context) (*leave.ChartData, error) {
	var resp leave.ChartDataResponse
	if err := s.client.Get(ctx, "/leave/ajax/chart-data/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.ChartData, nil
}

// ApprovalChartData returns approval statistics for a period.
func (s *Service) ApprovalChartData(ctx context.Context, period string) (*leave.ChartData, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}

	var resp leave.ChartDataResponse
	if err := s.client.Get(ctx, "/leave/ajax/approval-chart-data/", query, &resp); err != nil {
		return nil, err
	}
	return &resp.ChartData, nil
}

// Detail returns a leave request by control number.
func (s *Service) Detail(ctx context.Context, controlNumber string) (*leave.LeaveRequest, error) {
	var resp leave.DetailResponse
	err := s.client.Get(ctx, "/leave/detail/"+url.PathEscape(controlNumber)+"/", nil, &resp)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, leave.ErrRequestNotFound
		}
		return nil, err
	}
	return resp.Request, nil
}

// Cancel withdraws a pending leave request.
func (s *Service) Cancel(ctx context.Context, controlNumber string) error {
	var resp leave.ActionResponse
	err := s.client.PostJSON(ctx, "/leave/cancel/"+url.PathEscape(controlNumber)+"/", nil, &resp)
	if err != nil {
		if api.IsNotFound(err) {
			return leave.ErrRequestNotFound
		}
		return err
	}
	return nil
}

// Process records an approver's decision on a leave request.
func (s *Service) Process(ctx context.Context, controlNumber string, req leave.ProcessRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	var resp leave.ActionResponse
	err := s.client.PostJSON(ctx, "/leave/process/"+url.PathEscape(controlNumber)+"/", req, &resp)
	if err != nil {
		if api.IsNotFound(err) {
			return leave.ErrRequestNotFound
		}
		return err
	}
	return nil
}

// Apply validates and submits a leave application. Duration is computed
// locally against the calendar so the user sees billable days and hours
// before the round trip; a custom single-day clock range comes from the
// stored preference.
func (s *Service) Apply(ctx context.Context, req leave.ApplyRequest) (*leave.ApplyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, err := ParseDay(req.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := ParseDay(req.DateTo)
	if err != nil {
		return nil, err
	}

	calc, err := s.Calculator(ctx)
	if err != nil {
		return nil, err
	}

	duration, err := calc.Duration(from, to, s.SavedClockRange())
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"leave_type_id":   req.LeaveTypeID,
		"leave_reason_id": req.LeaveReasonID,
		"date_from":       req.DateFrom,
		"date_to":         req.DateTo,
		"reason":          req.Reason,
		"days":            strconv.Itoa(duration.WorkingDays),
		"hours":           strconv.FormatFloat(duration.Hours, 'f', -1, 64),
	}

	var resp leave.ApplyResponse
	if req.AttachmentPath != "" {
		file, err := os.Open(req.AttachmentPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open attachment: %w", err)
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat attachment: %w", err)
		}

		err = s.client.UploadFile(ctx, "/leave/apply/", "attachment", req.AttachmentPath,
			file, info.Size(), fields, nil, &resp)
		if err != nil {
			return nil, err
		}
		return &resp, nil
	}

	form := url.Values{}
	for key, value := range fields {
		form.Set(key, value)
	}
	if err := s.client.PostForm(ctx, "/leave/apply/", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SavedClockRange returns the persisted custom time-of-day preference, nil
// when the user never set one.
func (s *Service) SavedClockRange() *ClockRange {
	if s.prefs == nil {
		return nil
	}
	stored, err := s.prefs.Load()
	if err != nil || stored.LeaveTime == nil {
		return nil
	}
	return &ClockRange{From: stored.LeaveTime.From, To: stored.LeaveTime.To}
}

// SaveClockRange persists the custom time-of-day preference.
func (s *Service) SaveClockRange(r ClockRange) error {
	if _, err := r.Minutes(); err != nil {
		return err
	}
	if s.prefs == nil {
		return fmt.Errorf("no preference store configured")
	}
	stored, err := s.prefs.Load()
	if err != nil {
		return err
	}
	stored.LeaveTime = &prefs.LeaveTimePreference{From: r.From, To: r.To}
	return s.prefs.Save(stored)
}
