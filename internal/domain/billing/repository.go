package billing

import (
	"context"

	"github.com/agence/backend/internal/domain/shared"
)

// InvoiceRepository lists invoices ordered by issue date then id, both
// descending.
type InvoiceRepository interface {
	List(ctx context.Context, filter InvoiceFilter, params shared.PageParams) (shared.Page[Invoice], error)
}

// ServiceOrderRepository lists service orders ordered by request date then
// id, both descending.
type ServiceOrderRepository interface {
	List(ctx context.Context, filter ServiceOrderFilter, params shared.PageParams) (shared.Page[ServiceOrder], error)
}
