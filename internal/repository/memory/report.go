package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/report"
)

type ReportRepository struct {
	store *Store
}

func (r *ReportRepository) Create(ctx context.Context, rp report.Report) (report.Report, error) {
	s := r.store
	if err := s.begin(ctx, OpReportCreate); err != nil {
		return report.Report{}, err
	}
	defer s.mu.Unlock()

	now := time.Now()
	rp.ID = s.nextID("report")
	rp.CreatedAt = now
	rp.UpdatedAt = now
	s.reports = append(s.reports, rp)
	return rp, nil
}

// List orders by date descending unless UnsortedReports was called.
func (r *ReportRepository) List(ctx context.Context, filter report.ListFilter) ([]report.Report, error) {
	s := r.store
	if err := s.begin(ctx, OpReportList); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	reports := []report.Report{}
	for _, rp := range s.reports {
		if filter.UserID == nil || rp.UserID == *filter.UserID {
			reports = append(reports, rp)
		}
	}
	if !s.unsortedReports {
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Date.After(reports[j].Date)
		})
	}
	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (report.Report, error) {
	s := r.store
	if err := s.begin(ctx, OpReportGet); err != nil {
		return report.Report{}, err
	}
	defer s.mu.Unlock()

	for _, rp := range s.reports {
		if rp.ID == id {
			return rp, nil
		}
	}
	return report.Report{}, report.ErrReportNotFound
}
