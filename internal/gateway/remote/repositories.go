package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
)

type ProfileRepository struct {
	client *Client
}

// GetByID implements identity.ProfileRepository.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (identity.Profile, error) {
	var p identity.Profile
	err := r.client.authed(ctx, call{
		op:     "users.get",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(id),
	}, &p)
	if err != nil {
		return identity.Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return identity.Profile{}, malformed("users.get", err)
	}
	return p, nil
}

// GetByIDs implements identity.ProfileRepository.
func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]identity.Profile, error) {
	if len(ids) == 0 {
		return []identity.Profile{}, nil
	}
	var profiles []identity.Profile
	err := r.client.authed(ctx, call{
		op:     "users.list",
		method: http.MethodGet,
		path:   "/users",
		query:  url.Values{"id": ids},
	}, &profiles)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, malformed("users.list", err)
		}
	}
	return profiles, nil
}

// Create implements identity.ProfileRepository. The endpoint is public so a
// freshly signed-up account can insert its own row.
func (r *ProfileRepository) Create(ctx context.Context, profile identity.Profile) (identity.Profile, error) {
	var created identity.Profile
	err := r.client.do(ctx, call{
		op:     "users.create",
		method: http.MethodPost,
		path:   "/users",
		body: record.CreateProfileRequest{
			ID:    profile.ID,
			Name:  profile.Name,
			Role:  profile.Role,
			Email: profile.Email,
		},
	}, &created)
	if err != nil {
		return identity.Profile{}, err
	}
	return created, nil
}

type AttendanceRepository struct {
	client *Client
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	var found *attendance.Attendance
	err := r.client.authed(ctx, call{
		op:     "attendance.get",
		method: http.MethodGet,
		path:   "/attendance",
		query:  url.Values{"user_id": {userID}, "date": {date}},
	}, &found)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}
	if err := found.Validate(); err != nil {
		return nil, malformed("attendance.get", err)
	}
	return found, nil
}

// Create implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	req := attendance.CreateAttendanceRequest{UserID: rec.UserID, Date: rec.Date}
	if rec.CheckIn != nil {
		req.CheckIn = *rec.CheckIn
	}

	var created attendance.Attendance
	err := r.client.authed(ctx, call{
		op:     "attendance.create",
		method: http.MethodPost,
		path:   "/attendance",
		body:   req,
	}, &created)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if err := created.Validate(); err != nil {
		return attendance.Attendance{}, malformed("attendance.create", err)
	}
	return created, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (r *AttendanceRepository) UpdateCheckOut(ctx context.Context, id, checkOut string) (attendance.Attendance, error) {
	var updated attendance.Attendance
	err := r.client.authed(ctx, call{
		op:     "attendance.checkout",
		method: http.MethodPatch,
		path:   "/attendance/" + url.PathEscape(id),
		body:   attendance.CheckOutRequest{CheckOut: checkOut},
	}, &updated)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if err := updated.Validate(); err != nil {
		return attendance.Attendance{}, malformed("attendance.checkout", err)
	}
	return updated, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	err := r.client.authed(ctx, call{
		op:     "attendance.list",
		method: http.MethodGet,
		path:   "/attendance",
		query:  url.Values{"date": {date}},
	}, &records)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, malformed("attendance.list", err)
		}
	}
	return records, nil
}

type LeaveRequestRepository struct {
	client *Client
}

// Create implements leave.LeaveRequestRepository.
func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	var created leave.LeaveRequest
	err := r.client.authed(ctx, call{
		op:     "leave.create",
		method: http.MethodPost,
		path:   "/leave-requests",
		body: leave.CreateLeaveRequestRequest{
			UserID:    request.UserID,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
			Reason:    request.Reason,
			Status:    request.Status,
		},
	}, &created)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if err := created.Validate(); err != nil {
		return leave.LeaveRequest{}, malformed("leave.create", err)
	}
	return created, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *LeaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, "leave.list_by_user", url.Values{"user_id": {userID}})
}

// List implements leave.LeaveRequestRepository.
func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, "leave.list", nil)
}

func (r *LeaveRequestRepository) list(ctx context.Context, op string, query url.Values) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	err := r.client.authed(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/leave-requests",
		query:  query,
	}, &requests)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if err := req.Validate(); err != nil {
			return nil, malformed(op, err)
		}
	}
	return requests, nil
}

type ReportRepository struct {
	client *Client
}

// Create implements report.ReportRepository.
func (r *ReportRepository) Create(ctx context.Context, rp report.Report) (report.Report, error) {
	var created report.Report
	err := r.client.authed(ctx, call{
		op:     "reports.create",
		method: http.MethodPost,
		path:   "/reports",
		body: report.CreateReportRequest{
			UserID:      rp.UserID,
			Title:       rp.Title,
			Description: rp.Description,
			Status:      rp.Status,
			Date:        rp.Date,
		},
	}, &created)
	if err != nil {
		return report.Report{}, err
	}
	if err := created.Validate(); err != nil {
		return report.Report{}, malformed("reports.create", err)
	}
	return created, nil
}

// List implements report.ReportRepository.
func (r *ReportRepository) List(ctx context.Context, filter report.ListFilter) ([]report.Report, error) {
	query := url.Values{}
	if filter.UserID != nil {
		query.Set("user_id", *filter.UserID)
	}

	var reports []report.Report
	err := r.client.authed(ctx, call{
		op:     "reports.list",
		method: http.MethodGet,
		path:   "/reports",
		query:  query,
	}, &reports)
	if err != nil {
		return nil, err
	}
	for _, rp := range reports {
		if err := rp.Validate(); err != nil {
			return nil, malformed("reports.list", err)
		}
	}
	return reports, nil
}

// GetByID implements report.ReportRepository.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (report.Report, error) {
	var found report.Report
	err := r.client.authed(ctx, call{
		op:     "reports.get",
		method: http.MethodGet,
		path:   "/reports/" + url.PathEscape(id),
	}, &found)
	if err != nil {
		return report.Report{}, err
	}
	if err := found.Validate(); err != nil {
		return report.Report{}, malformed("reports.get", err)
	}
	return found, nil
}
