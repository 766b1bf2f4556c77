package finance

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/domain/finance"
	"github.com/hrsuite/portal-go/internal/pkg/progress"
	"github.com/hrsuite/portal-go/internal/pkg/report"
	"github.com/hrsuite/portal-go/internal/pkg/spreadsheet"
)

// Service exposes the finance endpoints: the paginated employee listing,
// chart data and the bulk spreadsheet uploads.
type Service struct {
	client  *api.Client
	tracker *progress.Tracker
	reports *report.Writer

	reloading atomic.Bool
}

func NewService(client *api.Client, tracker *progress.Tracker, reports *report.Writer) *Service {
	return &Service{
		client:  client,
		tracker: tracker,
		reports: reports,
	}
}

// ListEmployees returns a page of finance employee rows. A reload while one
// is already in flight is dropped, not queued.
func (s *Service) ListEmployees(ctx context.Context, page int, search, department string) (*finance.EmployeesPage, error) {
	if !s.reloading.CompareAndSwap(false, true) {
		return nil, finance.ErrReloadInFlight
	}
	defer s.reloading.Store(false)

	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if search != "" {
		query.Set("search", search)
	}
	if department != "" {
		query.Set("department", department)
	}

	var resp finance.EmployeesPage
	if err := s.client.Get(ctx, "/finance/employees/", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChartData returns the chart payload for a category/type/period selection.
func (s *Service) ChartData(ctx context.Context, category, chartType, period string) (*finance.ChartData, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if chartType != "" {
		query.Set("type", chartType)
	}
	if period != "" {
		query.Set("period", period)
	}

	var resp finance.ChartDataResponse
	if err := s.client.Get(ctx, "/finance/chart-data/", query, &resp); err != nil {
		return nil, err
	}
	return &resp.ChartData, nil
}

// FilterOptions returns the filter choices for a category.
func (s *Service) FilterOptions(ctx context.Context, category string) ([]string, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var resp finance.FilterOptionsResponse
	if err := s.client.Get(ctx, "/finance/filter-options/", query, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}

// Upload validates the spreadsheet locally, streams it to the type's import
// endpoint with progress tracking, and on partial failure writes an error
// report from the failed rows. Report generation is best effort; a failure
// there is only logged.
func (s *Service) Upload(ctx context.Context, uploadType finance.UploadType, path string) (*finance.UploadResult, error) {
	known := false
	for _, t := range finance.AllUploadTypes() {
		if t == uploadType {
			known = true
			break
		}
	}
	if !known {
		return nil, finance.ErrUnknownUploadType
	}

	rows, err := spreadsheet.ReadRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s upload: file contains no data rows", uploadType)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat upload file: %w", err)
	}

	toastID := string(uploadType) + "-" + uuid.New().String()[:8]
	message := "Uploading " + string(uploadType)
	s.tracker.Create(toastID, message)

	var result finance.UploadResult
	err = s.client.UploadFile(ctx, uploadType.Path(), "file", path,
		file, info.Size(), nil,
		func(pct int) { s.tracker.UpdateProgress(toastID, pct, message) },
		&result)
	if err != nil {
		// Network failures and rejected uploads surface the same way; the
		// user re-initiates manually, nothing is retried.
		s.tracker.MarkError(toastID, message+" failed")
		return nil, err
	}

	if failed := result.Failed(); len(failed) > 0 {
		s.tracker.MarkError(toastID, fmt.Sprintf("%s: %d rows not uploaded", uploadType, len(failed)))
		s.writeErrorReport(uploadType, failed)
		return &result, nil
	}

	s.tracker.MarkSuccess(toastID, fmt.Sprintf("%s: %d created, %d updated", uploadType, result.Created, result.Updated))
	return &result, nil
}

func (s *Service) writeErrorReport(uploadType finance.UploadType, failed finance.ErrorRows) {
	if s.reports == nil {
		return
	}
	path, err := s.reports.WriteErrorReport(string(uploadType), uploadType.ErrorHeader(), failed)
	if err != nil {
		log.Printf("failed to generate %s error report: %v", uploadType, err)
		for _, row := range failed {
			log.Printf("  not uploaded: %v", row)
		}
		return
	}
	log.Printf("%s error report written to %s", uploadType, path)
}
