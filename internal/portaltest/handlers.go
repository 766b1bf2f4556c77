package portaltest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/hrsuite/portal-go/internal/domain/finance"
	"github.com/hrsuite/portal-go/internal/domain/leave"
	"github.com/hrsuite/portal-go/internal/domain/profile"
	"github.com/hrsuite/portal-go/internal/domain/settings"
	"github.com/hrsuite/portal-go/internal/domain/timelog"
)

// ---- time logs ----

func (s *Server) listTimelogEmployees(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"employees": s.TimelogEmployees,
	})
}

func (s *Server) addTimelog(w http.ResponseWriter, r *http.Request) {
	var req timelog.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.TimelogEmployees {
		if s.TimelogEmployees[i].ID == req.EmployeeID {
			s.TimelogEmployees[i].TimeLogs = append(s.TimelogEmployees[i].TimeLogs, timelog.TimeLog{
				ID:    s.nextID,
				Entry: req.Entry,
				Time:  req.Time,
			})
			s.nextID++
			writeSuccess(w, map[string]interface{}{"message": "Time log added"})
			return
		}
	}
	writeNotFound(w, "Employee not found")
}

func (s *Server) updateTimelog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid time log id")
		return
	}

	var req timelog.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.TimelogEmployees {
		for j := range s.TimelogEmployees[i].TimeLogs {
			if s.TimelogEmployees[i].TimeLogs[j].ID == id {
				if req.Entry != "" {
					s.TimelogEmployees[i].TimeLogs[j].Entry = req.Entry
				}
				if req.Time != "" {
					s.TimelogEmployees[i].TimeLogs[j].Time = req.Time
				}
				writeSuccess(w, map[string]interface{}{"message": "Time log updated"})
				return
			}
		}
	}
	writeNotFound(w, "Time log not found")
}

func (s *Server) deleteTimelog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid time log id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.TimelogEmployees {
		logs := s.TimelogEmployees[i].TimeLogs
		for j := range logs {
			if logs[j].ID == id {
				s.TimelogEmployees[i].TimeLogs = append(logs[:j], logs[j+1:]...)
				writeSuccess(w, map[string]interface{}{"message": "Time log deleted"})
				return
			}
		}
	}
	writeNotFound(w, "Time log not found")
}

func (s *Server) importTimelogs(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil || size == 0 {
		writeBadRequest(w, "Uploaded file is empty")
		return
	}

	writeSuccess(w, map[string]interface{}{"message": "Time logs imported"})
}

// ---- finance ----

func (s *Server) listFinanceEmployees(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))
	department := r.URL.Query().Get("department")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []finance.Employee
	for _, e := range s.FinanceEmployees {
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(e.IDNumber, search) {
			continue
		}
		if department != "" && e.Department != department {
			continue
		}
		filtered = append(filtered, e)
	}

	total := len(filtered)
	totalPages := (total + s.PageSize - 1) / s.PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * s.PageSize
	end := start + s.PageSize
	if end > total {
		end = total
	}

	writeSuccess(w, map[string]interface{}{
		"employees":    filtered[start:end],
		"page_number":  page,
		"total_pages":  totalPages,
		"total_count":  total,
		"has_previous": page > 1,
		"has_next":     page < totalPages,
	})
}

func (s *Server) financeChartData(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]interface{}{
		"chart_data": finance.ChartData{
			Labels: []string{"Jan", "Feb", "Mar"},
			Datasets: []finance.Dataset{
				{Label: r.URL.Query().Get("category"), Data: []float64{10, 20, 30}},
			},
		},
	})
}

func (s *Server) financeFilterOptions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	options := []string{}
	for _, e := range s.FinanceEmployees {
		if _, ok := seen[e.Department]; !ok && e.Department != "" {
			seen[e.Department] = struct{}{}
			options = append(options, e.Department)
		}
	}
	sort.Strings(options)

	writeSuccess(w, map[string]interface{}{"options": options})
}

func (s *Server) financeUpload(w http.ResponseWriter, r *http.Request) {
	uploadType := finance.UploadType(chi.URLParam(r, "type"))

	file, _, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()
	_, _ = io.Copy(io.Discard, file)

	s.mu.Lock()
	result, ok := s.UploadResults[uploadType]
	s.mu.Unlock()
	if !ok {
		result = finance.UploadResult{Success: true, Created: 1}
	}

	writeJSON(w, http.StatusOK, result)
}

// ---- general settings ----

func settingsResource(r *http.Request) (settings.Resource, bool) {
	resource := settings.Resource(chi.URLParam(r, "resource"))
	for _, known := range settings.AllResources() {
		if known == resource {
			return resource, true
		}
	}
	return resource, false
}

func (s *Server) listSettings(w http.ResponseWriter, r *http.Request) {
	resource, ok := settingsResource(r)
	if !ok {
		writeNotFound(w, "Unknown resource")
		return
	}

	s.mu.Lock()
	items := s.settingsItems[resource]
	if items == nil {
		items = []settings.Item{}
	}
	s.mu.Unlock()

	writeSuccess(w, map[string]interface{}{resource.ListKey(): items})
}

func (s *Server) createSettings(w http.ResponseWriter, r *http.Request) {
	resource, ok := settingsResource(r)
	if !ok {
		writeNotFound(w, "Unknown resource")
		return
	}

	var req settings.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	item, err := itemFromRequest(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s.mu.Lock()
	item.ID = s.nextID
	s.nextID++
	s.settingsItems[resource] = append(s.settingsItems[resource], item)
	s.mu.Unlock()

	writeSuccess(w, map[string]interface{}{resource.ItemKey(): item})
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	resource, ok := settingsResource(r)
	if !ok {
		writeNotFound(w, "Unknown resource")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid id")
		return
	}

	var req settings.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	updated, err := itemFromRequest(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.settingsItems[resource]
	for i := range items {
		if items[i].ID == id {
			updated.ID = id
			items[i] = updated
			writeSuccess(w, map[string]interface{}{resource.ItemKey(): updated})
			return
		}
	}
	writeNotFound(w, "Item not found")
}

func (s *Server) deleteSettings(w http.ResponseWriter, r *http.Request) {
	resource, ok := settingsResource(r)
	if !ok {
		writeNotFound(w, "Unknown resource")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.settingsItems[resource]
	for i := range items {
		if items[i].ID == id {
			s.settingsItems[resource] = append(items[:i], items[i+1:]...)
			writeSuccess(w, map[string]interface{}{"message": "Item deleted"})
			return
		}
	}
	writeNotFound(w, "Item not found")
}

func itemFromRequest(req settings.SaveRequest) (settings.Item, error) {
	item := settings.Item{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
	}
	if req.Rate != "" {
		rate, err := decimal.NewFromString(req.Rate)
		if err != nil {
			return settings.Item{}, fmt.Errorf("invalid rate: %s", req.Rate)
		}
		item.Rate = &rate
	}
	return item, nil
}

// ---- leave ----

func (s *Server) holidaysAndExceptions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holidays := s.Holidays
	if holidays == nil {
		holidays = []leave.Holiday{}
	}
	exceptions := s.SundayExceptions
	if exceptions == nil {
		exceptions = []leave.SundayException{}
	}

	writeSuccess(w, map[string]interface{}{
		"holidays":          holidays,
		"sunday_exceptions": exceptions,
	})
}

func (s *Server) checkApprover(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeSuccess(w, map[string]interface{}{"is_approver": s.IsApprover})
}

func (s *Server) leaveBalance(w http.ResponseWriter, r *http.Request) {
	leaveTypeID := r.URL.Query().Get("leave_type_id")

	s.mu.Lock()
	balance, ok := s.Balances[leaveTypeID]
	s.mu.Unlock()
	if !ok {
		writeNotFound(w, "Leave type not found")
		return
	}

	writeSuccess(w, map[string]interface{}{
		"leave_type": balance.LeaveType,
		"balance":    balance.Balance,
		"used":       balance.Used,
	})
}

func (s *Server) searchApprovals(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	var pending []leave.LeaveRequest
	for _, req := range s.LeaveRequests {
		if req.Status != leave.StatusPending {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(req.EmployeeName), search) {
			continue
		}
		pending = append(pending, *req)
	}
	s.mu.Unlock()

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].ControlNumber < pending[j].ControlNumber
	})

	total := len(pending)
	totalPages := (total + s.PageSize - 1) / s.PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * s.PageSize
	end := start + s.PageSize
	if end > total {
		end = total
	}
	if pending == nil {
		pending = []leave.LeaveRequest{}
	}

	writeSuccess(w, map[string]interface{}{
		"approvals":    pending[start:end],
		"page_number":  page,
		"total_pages":  totalPages,
		"total_count":  total,
		"has_previous": page > 1,
		"has_next":     page < totalPages,
	})
}

func (s *Server) leaveChartData(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]interface{}{
		"chart_data": leave.ChartData{
			Labels: []string{"Approved", "Pending", "Disapproved"},
			Datasets: []leave.Dataset{
				{Label: "Requests", Data: []float64{5, 2, 1}},
			},
		},
	})
}

func (s *Server) leaveDetail(w http.ResponseWriter, r *http.Request) {
	controlNumber := chi.URLParam(r, "controlNumber")

	s.mu.Lock()
	req, ok := s.LeaveRequests[controlNumber]
	s.mu.Unlock()
	if !ok {
		writeNotFound(w, "Leave request not found")
		return
	}

	writeSuccess(w, map[string]interface{}{"request": req})
}

func (s *Server) applyLeave(w http.ResponseWriter, r *http.Request) {
	// Applications arrive as multipart when an attachment is included and
	// as a plain form otherwise.
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			writeBadRequest(w, "Invalid request format")
			return
		}
	}

	dateFrom := r.FormValue("date_from")
	dateTo := r.FormValue("date_to")
	if dateFrom == "" || dateTo == "" {
		writeBadRequest(w, "date_from and date_to are required")
		return
	}

	days, _ := strconv.ParseFloat(r.FormValue("days"), 64)
	hours, _ := strconv.ParseFloat(r.FormValue("hours"), 64)

	attachment := ""
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["attachment"]; len(files) > 0 {
			attachment = files[0].Filename
		}
	}

	s.mu.Lock()
	controlNumber := fmt.Sprintf("LR-%04d", s.nextID)
	s.nextID++
	s.LeaveRequests[controlNumber] = &leave.LeaveRequest{
		ControlNumber: controlNumber,
		LeaveType:     r.FormValue("leave_type_id"),
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Days:          days,
		Hours:         hours,
		Reason:        r.FormValue("reason"),
		Status:        leave.StatusPending,
		Attachment:    attachment,
	}
	s.mu.Unlock()

	writeSuccess(w, map[string]interface{}{
		"message":        "Leave application submitted",
		"control_number": controlNumber,
	})
}

func (s *Server) cancelLeave(w http.ResponseWriter, r *http.Request) {
	controlNumber := chi.URLParam(r, "controlNumber")

	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.LeaveRequests[controlNumber]
	if !ok {
		writeNotFound(w, "Leave request not found")
		return
	}
	req.Status = leave.StatusCancelled
	writeSuccess(w, map[string]interface{}{"message": "Leave request cancelled"})
}

func (s *Server) processLeave(w http.ResponseWriter, r *http.Request) {
	controlNumber := chi.URLParam(r, "controlNumber")

	var body leave.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.LeaveRequests[controlNumber]
	if !ok {
		writeNotFound(w, "Leave request not found")
		return
	}
	if req.Status != leave.StatusPending {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"success": false,
			"error":   "Leave request already processed",
		})
		return
	}

	switch body.Action {
	case leave.ActionApprove:
		req.Status = leave.StatusApproved
	case leave.ActionDisapprove:
		req.Status = leave.StatusDisapproved
	default:
		writeBadRequest(w, "action must be either approve or disapprove")
		return
	}
	writeSuccess(w, map[string]interface{}{"message": "Leave request processed"})
}

// ---- profile ----

func (s *Server) updateProfileSection(w http.ResponseWriter, r *http.Request) {
	var req profile.UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}
	if req.Section == "" {
		writeBadRequest(w, "section is required")
		return
	}
	writeSuccess(w, map[string]interface{}{"message": "Profile updated"})
}

func (s *Server) adminUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	if _, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err != nil {
		writeBadRequest(w, "Invalid employee id")
		return
	}
	var req profile.AdminUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}
	writeSuccess(w, map[string]interface{}{"message": "Employee updated"})
}

func (s *Server) adminEmployeeAction(w http.ResponseWriter, r *http.Request) {
	if _, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err != nil {
		writeBadRequest(w, "Invalid employee id")
		return
	}

	action := profile.AdminAction(chi.URLParam(r, "action"))
	for _, known := range profile.AllAdminActions() {
		if known == action {
			writeSuccess(w, map[string]interface{}{"message": string(action) + " applied"})
			return
		}
	}
	writeNotFound(w, "Unknown action")
}

func (s *Server) addEducation(w http.ResponseWriter, r *http.Request) {
	var req profile.EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	s.mu.Lock()
	education := profile.Education{
		ID:            s.nextID,
		Level:         req.Level,
		School:        req.School,
		Course:        req.Course,
		YearGraduated: req.YearGraduated,
	}
	s.nextID++
	s.educations[education.ID] = education
	s.mu.Unlock()

	writeSuccess(w, map[string]interface{}{"education": education})
}

func (s *Server) updateEducation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid education id")
		return
	}

	var req profile.EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request format")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	education, ok := s.educations[id]
	if !ok {
		writeNotFound(w, "Education record not found")
		return
	}
	education.Level = req.Level
	education.School = req.School
	education.Course = req.Course
	education.YearGraduated = req.YearGraduated
	s.educations[id] = education

	writeSuccess(w, map[string]interface{}{"education": education})
}

func (s *Server) deleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid education id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.educations[id]; !ok {
		writeNotFound(w, "Education record not found")
		return
	}
	delete(s.educations, id)
	writeSuccess(w, map[string]interface{}{"message": "Education record deleted"})
}
