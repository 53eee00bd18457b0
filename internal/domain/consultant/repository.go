package consultant

import (
	"context"

	"github.com/agence/backend/internal/domain/shared"
)

// Repository lists the consultants eligible for reporting. The returned
// page's total is computed over the same eligibility predicate as its
// content, with the window removed.
type Repository interface {
	List(ctx context.Context, params shared.PageParams) (shared.Page[Consultant], error)
}
