package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
)

type LeaveServiceImpl struct {
	session identity.SessionContext
	leave.LeaveRequestRepository
	enforceDateOrder bool
	logger           *slog.Logger
}

// NewLeaveService builds the leave workflow. enforceDateOrder rejects an end
// date before the start date; it is off unless configured.
func NewLeaveService(session identity.SessionContext, leaveRequestRepository leave.LeaveRequestRepository, enforceDateOrder bool, logger *slog.Logger) leave.LeaveService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaveServiceImpl{
		session:                session,
		LeaveRequestRepository: leaveRequestRepository,
		enforceDateOrder:       enforceDateOrder,
		logger:                 logger,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	session, _, err := s.session.Require()
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if err := req.Validate(s.enforceDateOrder); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:    session.Identity.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		s.session.Observe(err)
		return leave.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}

	s.logger.InfoContext(ctx, "leave request submitted",
		slog.String("user_id", session.Identity.ID),
		slog.String("id", created.ID),
	)
	return created, nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveRequest, error) {
	session, _, err := s.session.Require()
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByUser(ctx, session.Identity.ID)
	if err != nil {
		s.session.Observe(err)
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	mine := make([]leave.LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if r.UserID != session.Identity.ID {
			s.logger.WarnContext(ctx, "dropping leave request of another user", slog.String("id", r.ID))
			continue
		}
		mine = append(mine, r)
	}
	return mine, nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	if _, _, err := s.session.Require(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		s.session.Observe(err)
		return nil, fmt.Errorf("list all leave requests: %w", err)
	}
	return requests, nil
}
