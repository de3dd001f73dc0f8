package report

import "context"

type ReportRepository interface {
	Create(ctx context.Context, report Report) (Report, error)
	// List orders by date, newest first.
	List(ctx context.Context, filter ListFilter) ([]Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
}
