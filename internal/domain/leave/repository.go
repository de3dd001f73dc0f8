package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
}
