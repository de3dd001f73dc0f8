package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/leave"
)

type LeaveRequestRepository struct {
	store *Store
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	s := r.store
	if err := s.begin(ctx, OpLeaveCreate); err != nil {
		return leave.LeaveRequest{}, err
	}
	defer s.mu.Unlock()

	request.ID = s.nextID("leave")
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	s.leave = append(s.leave, request)
	return request, nil
}

// ListByUser returns the user's rows, or every row after LeakLeaveRequests.
func (r *LeaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	s := r.store
	if err := s.begin(ctx, OpLeaveListByUser); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	requests := []leave.LeaveRequest{}
	for _, l := range s.leave {
		if l.UserID == userID || s.leakLeave {
			requests = append(requests, l)
		}
	}
	return requests, nil
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	s := r.store
	if err := s.begin(ctx, OpLeaveList); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return append([]leave.LeaveRequest{}, s.leave...), nil
}
