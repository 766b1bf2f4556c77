package profile

import (
	"context"
	"strconv"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/domain/profile"
)

// Service exposes the profile endpoints: self-service section updates,
// admin employee edits and account state actions, and education records.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// UpdateSection updates one section of the caller's own profile.
func (s *Service) UpdateSection(ctx context.Context, req profile.UpdateSectionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	var resp profile.ActionResponse
	return s.client.PostJSON(ctx, "/profile/update-profile-section/", req, &resp)
}

// AdminUpdateEmployee updates an employee's profile on their behalf.
func (s *Service) AdminUpdateEmployee(ctx context.Context, employeeID int64, req profile.AdminUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	var resp profile.ActionResponse
	path := "/profile/admin/employee/" + strconv.FormatInt(employeeID, 10) + "/update/"
	return s.client.PostJSON(ctx, path, req, &resp)
}

// AdminAction applies an account state change to an employee.
func (s *Service) AdminAction(ctx context.Context, employeeID int64, action profile.AdminAction) error {
	known := false
	for _, a := range profile.AllAdminActions() {
		if a == action {
			known = true
			break
		}
	}
	if !known {
		return profile.ErrUnknownAdminAction
	}

	var resp profile.ActionResponse
	path := "/profile/admin/employee/" + strconv.FormatInt(employeeID, 10) + "/" + string(action) + "/"
	return s.client.PostJSON(ctx, path, nil, &resp)
}

// AddEducation adds an education record to the caller's profile.
func (s *Service) AddEducation(ctx context.Context, req profile.EducationRequest) (*profile.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp profile.EducationResponse
	if err := s.client.PostJSON(ctx, "/profile/add-education/", req, &resp); err != nil {
		return nil, err
	}
	return resp.Education, nil
}

// UpdateEducation modifies an education record.
func (s *Service) UpdateEducation(ctx context.Context, id int64, req profile.EducationRequest) (*profile.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp profile.EducationResponse
	path := "/profile/update-education/" + strconv.FormatInt(id, 10) + "/"
	err := s.client.PostJSON(ctx, path, req, &resp)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, profile.ErrEducationNotFound
		}
		return nil, err
	}
	return resp.Education, nil
}

// DeleteEducation removes an education record.
func (s *Service) DeleteEducation(ctx context.Context, id int64) error {
	var resp profile.ActionResponse
	path := "/profile/delete-education/" + strconv.FormatInt(id, 10) + "/"
	err := s.client.PostJSON(ctx, path, nil, &resp)
	if err != nil {
		if api.IsNotFound(err) {
			return profile.ErrEducationNotFound
		}
		return err
	}
	return nil
}
