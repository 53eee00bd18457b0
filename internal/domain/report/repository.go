package report

import (
	"context"

	"github.com/agence/backend/internal/domain/shared"
)

// Repository computes the monthly financial aggregates. Rows are ordered
// by (entity id, year, month) ascending; months with no invoices produce
// no row. The page total is counted over the identical aggregation query.
type Repository interface {
	ConsultantMonthlyTotals(ctx context.Context, filter ConsultantFilter, params shared.PageParams) (shared.Page[ConsultantMonthlyTotal], error)
	ClientMonthlyTotals(ctx context.Context, filter ClientFilter, params shared.PageParams) (shared.Page[ClientMonthlyTotal], error)
}
