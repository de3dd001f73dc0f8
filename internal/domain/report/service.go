package report

import "context"

type ReportService interface {
	Create(ctx context.Context, req CreateRequest) (Report, error)
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
}
