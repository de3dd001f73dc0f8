package leave

import "context"

type LeaveService interface {
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequest, error)
	ListMine(ctx context.Context) ([]LeaveRequest, error)
	// ListAll is not role-gated here; callers check the admin route first.
	ListAll(ctx context.Context) ([]LeaveRequest, error)
}
