package timelog

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/domain/timelog"
	"github.com/hrsuite/portal-go/internal/pkg/progress"
	"github.com/hrsuite/portal-go/internal/pkg/spreadsheet"
)

// Service exposes the time log endpoints: the per-employee clock event
// listing, single-entry mutations and the bulk spreadsheet import.
type Service struct {
	client  *api.Client
	tracker *progress.Tracker
}

func NewService(client *api.Client, tracker *progress.Tracker) *Service {
	return &Service{
		client:  client,
		tracker: tracker,
	}
}

// ListEmployees returns employees with their time log entries.
func (s *Service) ListEmployees(ctx context.Context) ([]timelog.Employee, error) {
	var resp timelog.ListEmployeesResponse
	if err := s.client.Get(ctx, "/calendar/timelogs/employees/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// Add records a single clock event.
func (s *Service) Add(ctx context.Context, req timelog.AddRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	var resp timelog.ActionResponse
	return s.client.PostJSON(ctx, "/calendar/timelogs/add/", req, &resp)
}

// Update modifies a clock event.
func (s *Service) Update(ctx context.Context, id int64, req timelog.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	var resp timelog.ActionResponse
	path := "/calendar/timelogs/user/" + strconv.FormatInt(id, 10) + "/update/"
	return s.client.PutJSON(ctx, path, req, &resp)
}

// Delete removes a clock event.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var resp timelog.ActionResponse
	path := "/calendar/timelogs/user/" + strconv.FormatInt(id, 10) + "/delete/"
	return s.client.Delete(ctx, path, &resp)
}

// Import validates the spreadsheet locally, then uploads it with progress
// tracking. An unreadable or empty file never spends a round trip.
func (s *Service) Import(ctx context.Context, path string) (*timelog.ImportResponse, error) {
	rows, err := spreadsheet.ReadRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, timelog.ErrEmptyImportFile
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat import file: %w", err)
	}

	toastID := "timelogs-" + uuid.New().String()[:8]
	s.tracker.Create(toastID, "Importing time logs")

	var resp timelog.ImportResponse
	err = s.client.UploadFile(ctx, "/calendar/timelogs/import/", "file", path,
		file, info.Size(), nil,
		func(pct int) { s.tracker.UpdateProgress(toastID, pct, "Importing time logs") },
		&resp)
	if err != nil {
		s.tracker.MarkError(toastID, "Time log import failed")
		return nil, err
	}

	s.tracker.MarkSuccess(toastID, resp.Message)
	return &resp, nil
}
