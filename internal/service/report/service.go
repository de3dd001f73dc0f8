package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
)

type ReportServiceImpl struct {
	session    identity.SessionContext
	reportRepo report.ReportRepository
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReportService(session identity.SessionContext, reportRepo report.ReportRepository, c clock.Clock, logger *slog.Logger) report.ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		session:    session,
		reportRepo: reportRepo,
		clock:      c,
		logger:     logger,
	}
}

// Create implements report.ReportService.
func (s *ReportServiceImpl) Create(ctx context.Context, req report.CreateRequest) (report.Report, error) {
	session, _, err := s.session.Require()
	if err != nil {
		return report.Report{}, err
	}
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	created, err := s.reportRepo.Create(ctx, report.Report{
		UserID:      session.Identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Date:        s.clock.Now(),
	})
	if err != nil {
		s.session.Observe(err)
		return report.Report{}, fmt.Errorf("create report: %w", err)
	}

	s.logger.InfoContext(ctx, "report created",
		slog.String("user_id", session.Identity.ID),
		slog.String("id", created.ID),
	)
	return created, nil
}

// List implements report.ReportService.
func (s *ReportServiceImpl) List(ctx context.Context) ([]report.Report, error) {
	session, _, err := s.session.Require()
	if err != nil {
		return nil, err
	}

	userID := session.Identity.ID
	reports, err := s.reportRepo.List(ctx, report.ListFilter{UserID: &userID})
	if err != nil {
		s.session.Observe(err)
		return nil, fmt.Errorf("list reports: %w", err)
	}

	mine := make([]report.Report, 0, len(reports))
	for _, r := range reports {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine, nil
}

// GetByID implements report.ReportService.
func (s *ReportServiceImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	session, _, err := s.session.Require()
	if err != nil {
		return report.Report{}, err
	}

	found, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			return report.Report{}, report.ErrReportNotFound
		}
		s.session.Observe(err)
		return report.Report{}, fmt.Errorf("get report: %w", err)
	}
	if found.UserID != session.Identity.ID && !session.Identity.IsAdmin() {
		return report.Report{}, report.ErrReportNotFound
	}
	return found, nil
}
